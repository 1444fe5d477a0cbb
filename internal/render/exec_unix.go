//go:build !windows

package render

import "os"

// IsExecutable reports whether any execute permission bit is set.
func IsExecutable(_ string, info os.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
