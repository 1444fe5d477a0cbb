package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// palette maps configured color names onto the 16-color terminal palette.
// Bare names are the bright row, dark* the standard row, matching the
// vocabulary the default document uses. Unknown names fall back to black.
var palette = map[string]termenv.Color{
	"black":       termenv.ANSIBlack,
	"red":         termenv.ANSIBrightRed,
	"green":       termenv.ANSIBrightGreen,
	"yellow":      termenv.ANSIBrightYellow,
	"blue":        termenv.ANSIBrightBlue,
	"magenta":     termenv.ANSIBrightMagenta,
	"cyan":        termenv.ANSIBrightCyan,
	"white":       termenv.ANSIBrightWhite,
	"grey":        termenv.ANSIWhite,
	"darkred":     termenv.ANSIRed,
	"darkgreen":   termenv.ANSIGreen,
	"darkyellow":  termenv.ANSIYellow,
	"darkblue":    termenv.ANSIBlue,
	"darkmagenta": termenv.ANSIMagenta,
	"darkcyan":    termenv.ANSICyan,
	"darkgrey":    termenv.ANSIBrightBlack,
}

// colorFromName resolves a configured color name, defaulting to black.
func colorFromName(name string) termenv.Color {
	if c, ok := palette[strings.ToLower(name)]; ok {
		return c
	}
	return termenv.ANSIBlack
}

// Paint wraps text in the escape sequence for the given color class. It is
// the identity function when color output is disabled, and classes missing
// from the color table paint black rather than failing.
func (r *Renderer) Paint(text, class string) string {
	if !r.color {
		return text
	}

	name, ok := r.cfg.Colors[class]
	if !ok {
		name = "black"
	}
	c := colorFromName(name)

	return fmt.Sprintf("%s%sm%s%s%sm",
		termenv.CSI, c.Sequence(false), text, termenv.CSI, termenv.ResetSeq)
}

// ColorEnabled reports whether stdout wants colored output. Resolved once
// at startup and passed into the renderer, never queried per call.
func ColorEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
