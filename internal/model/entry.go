package model

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry represents a single filesystem path queued for rendering.
type Entry struct {
	Path string      // Path as shown to the user (usually relative)
	Info os.FileInfo // nil when metadata could not be retrieved (broken link)
}

// Basename returns the final path element.
func (e Entry) Basename() string {
	return filepath.Base(e.Path)
}

// Ext returns the lowercased extension including the leading dot,
// or "" when the basename has none.
func (e Entry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Path))
}

// IsDir reports whether the entry is a directory. False when metadata
// is unavailable.
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}
