// Package render turns filesystem entries into colored, icon-annotated
// display strings.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"ll/internal/config"
	"ll/internal/icon"
	"ll/internal/model"
)

// deadLinkGlyph marks entries whose metadata could not be read. It bypasses
// the icon tables entirely.
const deadLinkGlyph = "\uf481"

// ExecChecker reports whether an entry should be classed executable. The
// platform default is selected by build tag; tests inject their own.
type ExecChecker func(path string, info os.FileInfo) bool

// Renderer composes icon, name and size into one display string per entry.
// It is a pure function of its inputs plus the immutable configuration.
type Renderer struct {
	cfg   *config.Config
	color bool
	exec  ExecChecker
}

// New builds a Renderer. A nil exec checker selects the platform default.
func New(cfg *config.Config, color bool, exec ExecChecker) *Renderer {
	if exec == nil {
		exec = IsExecutable
	}
	return &Renderer{cfg: cfg, color: color, exec: exec}
}

// Render produces the display string for one entry. Entries without
// metadata degrade to the dead-link rendering instead of erroring.
func (r *Renderer) Render(e model.Entry) string {
	if e.Info == nil {
		return r.Paint(fmt.Sprintf("  %s %s", deadLinkGlyph, e.Path), "dead_link")
	}
	if e.Info.IsDir() {
		return r.renderDir(e)
	}
	return r.renderFile(e)
}

func (r *Renderer) renderDir(e model.Entry) string {
	basename := e.Basename()
	glyph := icon.Resolve(r.cfg.Folders, r.cfg.Aliases, "\ue5ff", []string{
		basename,
		e.Ext(),
		"folder",
	})

	class := "dir"
	if strings.HasPrefix(basename, ".") {
		class = "hidden_dir"
	}

	return r.Paint(fmt.Sprintf("  %s %s/", glyph, basename), class)
}

func (r *Renderer) renderFile(e model.Entry) string {
	basename := e.Basename()
	dirname := filepath.Dir(e.Path)
	glyph := icon.Resolve(r.cfg.Files, r.cfg.Aliases, "\uea7b", []string{
		dirname + "/" + basename,
		basename,
		e.Ext(),
		"file",
	})

	class := "file"
	switch {
	case r.exec(e.Path, e.Info):
		class = "executable_file"
	case strings.HasPrefix(basename, "."):
		class = "hidden"
	}

	name := r.Paint(fmt.Sprintf("  %s %s", glyph, basename), class)
	size := r.Paint(r.formatSize(uint64(e.Info.Size())), "file_size")

	return name + " " + size
}

// formatSize renders a byte count without the separating space humanize
// inserts, e.g. "4.2KiB" or "4.3kB" depending on options.size_format.
func (r *Renderer) formatSize(n uint64) string {
	s := humanize.Bytes(n)
	if r.cfg.Options.SizeFormat == config.SizeBinary {
		s = humanize.IBytes(n)
	}
	return strings.ReplaceAll(s, " ", "")
}
