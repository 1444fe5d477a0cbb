//go:build windows

package render

import (
	"os"
	"path/filepath"
	"strings"
)

// IsExecutable reports whether the extension marks a Windows executable.
func IsExecutable(path string, _ os.FileInfo) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd":
		return true
	}
	return false
}
