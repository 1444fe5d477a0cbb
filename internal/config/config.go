package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultTOML []byte

// Accepted values for options.size_format.
const (
	SizeBinary = "binary" // 4.2KiB
	SizeSI     = "si"     // 4.3kB
)

// ErrHomeDirNotFound is returned when no home directory can be resolved
// while locating the user configuration file.
var ErrHomeDirNotFound = errors.New("unable to retrieve the home directory")

// Config is the fully merged lookup model for a single run. It is built
// once by Load and read-only afterwards.
type Config struct {
	Aliases map[string]string `toml:"aliases"`
	Folders map[string]string `toml:"folders"`
	Files   map[string]string `toml:"files"`
	Colors  map[string]string `toml:"colors"`
	Ignore  Ignore            `toml:"ignore"`
	Options Options           `toml:"options"`
}

// Ignore lists lowercase basenames and extensions suppressed from default
// output.
type Ignore struct {
	Folders []string `toml:"folders"`
	Files   []string `toml:"files"`
}

// Options carries scalar settings outside the lookup tables.
type Options struct {
	SizeFormat string `toml:"size_format"`
}

// Override is a partial user document. Tables absent from the file stay
// nil, which lets the merge distinguish "not supplied" from "empty".
type Override struct {
	Aliases map[string]string `toml:"aliases"`
	Folders map[string]string `toml:"folders"`
	Files   map[string]string `toml:"files"`
	Colors  map[string]string `toml:"colors"`
	Ignore  Ignore            `toml:"ignore"`
	Options Options           `toml:"options"`
}

// mergePolicy selects how an override table folds into its default.
type mergePolicy int

const (
	extend  mergePolicy = iota // override keys win, default keys survive
	replace                    // override supersedes the table when supplied
)

// Load parses the embedded default document, folds in the user file when
// one exists and validates the result. A malformed user file is fatal.
func Load() (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(defaultTOML, &cfg); err != nil {
		return nil, fmt.Errorf("parsing built-in config: %w", err)
	}

	path, err := File()
	if err != nil {
		return nil, err
	}

	if data, readErr := os.ReadFile(path); readErr == nil {
		var o Override
		if err := toml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		cfg = Merge(cfg, o)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// File returns the user override location: $XDG_CONFIG_HOME/ll.toml when
// the variable is set, otherwise ~/.config/ll.toml.
func File() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ll.toml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", ErrHomeDirNotFound
	}
	return filepath.Join(home, ".config", "ll.toml"), nil
}

// Merge folds a user override into the defaults. The icon, color and alias
// tables are extended key by key; each ignore sub-list is replaced wholesale,
// but only when the override supplies that sub-key.
func Merge(base Config, o Override) Config {
	merged := base
	merged.Files = mergeTable(base.Files, o.Files, extend)
	merged.Folders = mergeTable(base.Folders, o.Folders, extend)
	merged.Colors = mergeTable(base.Colors, o.Colors, extend)
	merged.Aliases = mergeTable(base.Aliases, o.Aliases, extend)
	merged.Ignore.Folders = mergeList(base.Ignore.Folders, o.Ignore.Folders, replace)
	merged.Ignore.Files = mergeList(base.Ignore.Files, o.Ignore.Files, replace)
	if o.Options.SizeFormat != "" {
		merged.Options.SizeFormat = o.Options.SizeFormat
	}
	return merged
}

func mergeTable(base, override map[string]string, policy mergePolicy) map[string]string {
	if policy == replace && override != nil {
		return override
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func mergeList(base, override []string, policy mergePolicy) []string {
	if override == nil {
		return base
	}
	if policy == replace {
		return override
	}
	return append(append([]string{}, base...), override...)
}

// validate checks the invariants the renderer relies on: the final fallback
// icon keys must exist and size_format must be a known value.
func (c *Config) validate() error {
	if _, ok := c.Files["file"]; !ok {
		return errors.New(`config: missing required "file" icon`)
	}
	if _, ok := c.Folders["folder"]; !ok {
		return errors.New(`config: missing required "folder" icon`)
	}
	switch c.Options.SizeFormat {
	case SizeBinary, SizeSI:
		return nil
	default:
		return fmt.Errorf("config: unknown size_format %q", c.Options.SizeFormat)
	}
}
