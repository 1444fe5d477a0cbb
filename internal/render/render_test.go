package render

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ll/internal/config"
	"ll/internal/model"
)

type fakeInfo struct {
	name string
	size int64
	mode os.FileMode
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Files:   map[string]string{"file": "f"},
		Folders: map[string]string{"folder": "d"},
		Aliases: map[string]string{},
		Colors: map[string]string{
			"file":            "white",
			"hidden":          "darkgrey",
			"executable_file": "green",
			"file_size":       "darkgrey",
			"dir":             "blue",
			"hidden_dir":      "darkblue",
			"dead_link":       "darkred",
		},
		Options: config.Options{SizeFormat: config.SizeBinary},
	}
}

func never(string, os.FileInfo) bool  { return false }
func always(string, os.FileInfo) bool { return true }

func TestRenderDirectory(t *testing.T) {
	r := New(testConfig(), false, never)
	e := model.Entry{Path: "docs", Info: fakeInfo{name: "docs", dir: true}}

	require.Equal(t, "  d docs/", r.Render(e))
}

func TestRenderDirectoryBasenameIconWins(t *testing.T) {
	cfg := testConfig()
	cfg.Folders["docs"] = "D"
	r := New(cfg, false, never)

	got := r.Render(model.Entry{Path: "docs", Info: fakeInfo{name: "docs", dir: true}})

	require.Equal(t, "  D docs/", got)
}

func TestRenderFileWithBinarySize(t *testing.T) {
	r := New(testConfig(), false, never)
	e := model.Entry{Path: "notes.txt", Info: fakeInfo{name: "notes.txt", size: 4300}}

	require.Equal(t, "  f notes.txt 4.2KiB", r.Render(e))
}

func TestRenderFileWithSISize(t *testing.T) {
	cfg := testConfig()
	cfg.Options.SizeFormat = config.SizeSI
	r := New(cfg, false, never)
	e := model.Entry{Path: "notes.txt", Info: fakeInfo{name: "notes.txt", size: 4300}}

	require.Equal(t, "  f notes.txt 4.3kB", r.Render(e))
}

func TestRenderSmallFileSize(t *testing.T) {
	r := New(testConfig(), false, never)
	e := model.Entry{Path: "tiny", Info: fakeInfo{name: "tiny", size: 512}}

	require.Equal(t, "  f tiny 512B", r.Render(e))
}

func TestRenderExecutableClass(t *testing.T) {
	r := New(testConfig(), true, always)
	e := model.Entry{Path: "run.sh", Info: fakeInfo{name: "run.sh", mode: 0o755}}

	got := r.Render(e)

	require.True(t, strings.HasPrefix(got, "\x1b[92m"), "executable_file paints green: %q", got)
}

func TestRenderHiddenFileClass(t *testing.T) {
	r := New(testConfig(), true, never)
	e := model.Entry{Path: ".env", Info: fakeInfo{name: ".env"}}

	got := r.Render(e)

	require.True(t, strings.HasPrefix(got, "\x1b[90m"), "hidden paints darkgrey: %q", got)
}

func TestRenderHiddenDirectoryClass(t *testing.T) {
	r := New(testConfig(), true, never)
	e := model.Entry{Path: ".git", Info: fakeInfo{name: ".git", dir: true}}

	got := r.Render(e)

	require.True(t, strings.HasPrefix(got, "\x1b[34m"), "hidden_dir paints darkblue: %q", got)
}

func TestRenderDeadLink(t *testing.T) {
	r := New(testConfig(), true, never)
	e := model.Entry{Path: ".hidden"}

	got := r.Render(e)

	require.Contains(t, got, deadLinkGlyph)
	require.True(t, strings.HasPrefix(got, "\x1b[31m"), "dead_link paints darkred regardless of the name: %q", got)
	require.NotContains(t, got, "B", "dead links never get a size suffix")
}

func TestRenderParentQualifiedIconWins(t *testing.T) {
	cfg := testConfig()
	cfg.Files["sub/main.go"] = "P"
	cfg.Files["main.go"] = "B"
	r := New(cfg, false, never)

	got := r.Render(model.Entry{Path: "sub/main.go", Info: fakeInfo{name: "main.go", size: 10}})

	require.Equal(t, "  P main.go 10B", got)
}

func TestRenderExtensionIconThroughAlias(t *testing.T) {
	cfg := testConfig()
	cfg.Files[".png"] = "image"
	cfg.Aliases["image"] = "I"
	r := New(cfg, false, never)

	got := r.Render(model.Entry{Path: "cat.PNG", Info: fakeInfo{name: "cat.PNG", size: 10}})

	require.Equal(t, "  I cat.PNG 10B", got)
}

func TestRenderNameAndSizePaintedSeparately(t *testing.T) {
	r := New(testConfig(), true, never)
	e := model.Entry{Path: "notes.txt", Info: fakeInfo{name: "notes.txt", size: 4300}}

	got := r.Render(e)

	require.Equal(t, 4, strings.Count(got, "\x1b["), "name and size carry their own sequences")
}
