// Package config parses command-line flags into an immutable Config.
package config

import (
	"errors"
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all settings for one run.
type Config struct {
	// Directory settings
	RootDir string

	// Filtering settings
	Extensions   string
	MaxDepth     int
	Exclude      string
	Include      string
	IncludeAll   bool
	AllowIgnored bool

	// Content settings
	SkipBinary bool
	ParsePDF   bool

	// Traversal settings
	FollowLinks bool

	// Logging and output settings
	Verbose    bool
	NoColor    bool
	UseColors  bool
	OutputFile string
}

// Parse builds a Config from command-line arguments. The only validation
// error is supplying both include and exclude patterns; flag syntax errors
// are reported by the flag package itself.
func Parse(name string, args []string) (*Config, error) {
	c := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.RootDir, "dir", ".", "The root directory to scan")
	fs.StringVar(&c.Extensions, "ext", "", "Only include files with these extensions (comma-separated, e.g. 'py,txt')")
	fs.IntVar(&c.MaxDepth, "max-depth", -1, "Maximum directory depth to traverse (-1 = unlimited)")
	fs.StringVar(&c.Exclude, "exclude", "", "Patterns to exclude (comma-separated, e.g. 'node_modules/,vendor/'). Cannot be used with -include")
	fs.StringVar(&c.Include, "include", "", "Patterns to include (comma-separated, e.g. 'src/*.py'). Only matching files/dirs are processed. Cannot be used with -exclude")
	fs.BoolVar(&c.IncludeAll, "include-all", false, "Disable the default excludes (like node_modules/). No effect if -include is used")
	fs.BoolVar(&c.SkipBinary, "skip-binary", false, "Skip binary files entirely")
	fs.BoolVar(&c.FollowLinks, "follow-links", false, "Follow symbolic links during traversal")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&c.AllowIgnored, "allow-ignored", false, "Process files that are ignored by .gitignore")
	fs.BoolVar(&c.ParsePDF, "parse-pdf", false, "Extract text from PDF files using the pdftotext utility (requires pdftotext to be installed)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colored log output")
	fs.StringVar(&c.OutputFile, "output", "", "Write output to a file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.Include != "" && c.Exclude != "" {
		return nil, errors.New("-include and -exclude are mutually exclusive")
	}

	// Colors apply to stderr logging only; output to a file never needs them.
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c, nil
}
