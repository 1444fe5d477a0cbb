// Package listing runs the rendering pipeline: collect, filter, sort,
// render, emit.
package listing

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ll/internal/config"
	"ll/internal/layout"
	"ll/internal/model"
	"ll/internal/render"
)

// Options are the display flags a run is invoked with.
type Options struct {
	All          bool // bypass the ignore lists
	SingleColumn bool // one entry per line, unpadded
}

// Collect stats each globbed path and pairs it with its metadata. A failed
// stat (broken symlink, permission error) yields an entry with nil metadata
// rather than an error. Paths are shown relative to base when possible.
func Collect(paths []string, base string) []model.Entry {
	entries := make([]model.Entry, 0, len(paths))

	for _, path := range paths {
		shown := path
		if rel, err := filepath.Rel(base, path); err == nil {
			shown = rel
		}

		e := model.Entry{Path: shown}
		if info, err := os.Stat(path); err == nil {
			e.Info = info
		}
		entries = append(entries, e)
	}

	return entries
}

// Show renders the surviving entries and writes them to w as a grid, or one
// per line in single-column mode. Per-entry failures never abort the
// listing; rendering starts only once the full entry list is in hand.
func Show(w io.Writer, cfg *config.Config, r *render.Renderer, entries []model.Entry, opts Options, termWidth int) {
	filter := NewFilter(cfg.Ignore)

	kept := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		// Trailing-dot artifacts ("." and "..") never show.
		if strings.HasSuffix(e.Path, ".") {
			continue
		}
		if !opts.All && !filter.Keep(e) {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return strings.ToLower(kept[i].Basename()) < strings.ToLower(kept[j].Basename())
	})

	lines := make([]string, 0, len(kept))
	for _, e := range kept {
		lines = append(lines, r.Render(e))
	}

	if opts.SingleColumn {
		layout.PrintSingleColumn(w, lines)
		return
	}
	layout.Print(w, lines, termWidth)
}
