// Package icon maps filesystem entries to display glyphs through an
// ordered candidate-key lookup with one-hop alias indirection.
package icon

// Resolve returns the glyph for the first candidate key present in icons,
// falling back to fallback when none match. The result is then passed
// through aliases at most once, so a table value may name a glyph defined
// elsewhere without the lookup ever walking a chain.
func Resolve(icons, aliases map[string]string, fallback string, candidates []string) string {
	glyph := fallback

	for _, key := range candidates {
		if value, ok := icons[key]; ok {
			glyph = value
			break
		}
	}

	// One substitution only, never recursive.
	if aliased, ok := aliases[glyph]; ok {
		glyph = aliased
	}

	return glyph
}
