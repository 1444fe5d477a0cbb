package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"golang.org/x/term"

	"ll/internal/config"
	"ll/internal/listing"
	"ll/internal/model"
	"ll/internal/pathutil"
	"ll/internal/render"
)

var errPathNotFound = errors.New("couldn't find the specified path")

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "lltool",
		Repository: "ll",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ll [options] [path]\n\n")
		fmt.Fprintf(os.Stderr, "ll lists directory entries with Nerd Font icons and colored output.\n")
		fmt.Fprintf(os.Stderr, "The path may also be a glob pattern.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ll                # List the current directory\n")
		fmt.Fprintf(os.Stderr, "  ll ~/projects     # List another directory\n")
		fmt.Fprintf(os.Stderr, "  ll 'src/*.go'     # List glob matches\n")
		fmt.Fprintf(os.Stderr, "  ll -1a            # Everything, one entry per line\n")
	}

	singleColumn := pflag.BoolP("single-column", "1", false, "Force output to be one entry per line")
	allFlag := pflag.BoolP("all", "a", false, "Show all files and folders, disabling the ignore configuration")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("ll version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	opts := listing.Options{
		All:          *allFlag,
		SingleColumn: *singleColumn,
	}

	if err := run(pflag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts listing.Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if path == "" {
		path = pathutil.DefaultTarget()
	}

	input, err := pathutil.ExpandTilde(path)
	if err != nil {
		return err
	}
	input = pathutil.GlobTarget(input)

	paths, err := filepath.Glob(input)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", input, err)
	}

	base, err := filepath.EvalSymlinks(filepath.Dir(input))
	if err != nil {
		return fmt.Errorf("%w: %q", errPathNotFound, input)
	}
	if base, err = filepath.Abs(base); err != nil {
		return fmt.Errorf("%w: %q", errPathNotFound, input)
	}

	entries := listing.Collect(paths, base)

	// Width query failures degrade to one entry per line.
	width := 1
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r := render.New(cfg, render.ColorEnabled(), nil)
	listing.Show(os.Stdout, cfg, r, entries, opts, width)

	return nil
}
