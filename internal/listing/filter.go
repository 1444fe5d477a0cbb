package listing

import (
	"strings"

	"ll/internal/config"
	"ll/internal/model"
)

// Filter suppresses entries whose basename or extension appears in the
// configured ignore lists. Matching is case-insensitive.
type Filter struct {
	folders map[string]struct{}
	files   map[string]struct{}
}

// NewFilter lowercases the configured lists once up front.
func NewFilter(ignore config.Ignore) *Filter {
	f := &Filter{
		folders: make(map[string]struct{}, len(ignore.Folders)),
		files:   make(map[string]struct{}, len(ignore.Files)),
	}
	for _, name := range ignore.Folders {
		f.folders[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range ignore.Files {
		f.files[strings.ToLower(name)] = struct{}{}
	}
	return f
}

// Keep reports whether the entry survives filtering. When metadata is
// available the entry is only checked against the list for its kind;
// without it the name is compared against everything.
func (f *Filter) Keep(e model.Entry) bool {
	basename := strings.ToLower(e.Basename())
	ext := e.Ext()

	if e.Info != nil {
		if e.Info.IsDir() {
			return !contains(f.folders, basename)
		}
		return !(contains(f.files, basename) || contains(f.files, ext))
	}

	return !(contains(f.files, basename) || contains(f.files, ext) || contains(f.folders, basename))
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
