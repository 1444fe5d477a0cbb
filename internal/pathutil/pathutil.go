// Package pathutil builds the glob target for a run.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// ExpandTilde rewrites a leading ~ against the user's home directory.
// Inputs without a tilde pass through untouched.
func ExpandTilde(input string) (string, error) {
	if !strings.HasPrefix(input, "~") {
		return input, nil
	}

	expanded, err := homedir.Expand(input)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", input, err)
	}
	return expanded, nil
}

// GlobTarget turns user input into a glob pattern. A path that stats as a
// directory lists its contents; anything else (including an existing glob
// pattern) is returned as is.
func GlobTarget(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return filepath.Join(input, "*")
	}
	return input
}

// DefaultTarget is the pattern used when no path argument is given.
func DefaultTarget() string {
	return "." + string(filepath.Separator) + "*"
}
