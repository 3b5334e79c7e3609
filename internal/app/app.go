// Package app wires configuration, ignore rules, the walker, and the
// printer into a single run.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"listcontents/internal/config"
	"listcontents/internal/filter"
	"listcontents/internal/ignore"
	"listcontents/internal/logger"
	"listcontents/internal/pdf"
	"listcontents/internal/printer"
	"listcontents/internal/walker"
)

// DefaultExcludes covers common dependency-lock and generated-module paths.
// Applied in exclude mode unless disabled with -include-all.
var DefaultExcludes = []string{
	"node_modules/",
	"yarn.lock",
	"package-lock.json",
	"pnpm-lock.yaml",
}

// App encapsulates one scan run.
type App struct {
	cfg *config.Config
	log *logger.Console

	// Output is the destination for the dump itself; logs go to stderr.
	// Exported so main can close it when it is a file.
	Output io.Writer
}

// New creates an App from a parsed Config.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Closed by main once the run finishes.
		output = file
	}

	return &App{
		cfg:    cfg,
		log:    logger.New(os.Stderr, cfg.Verbose, cfg.UseColors),
		Output: output,
	}
}

// Run executes the scan and returns the process exit code: 0 on normal
// completion (even when individual files or directories were skipped after
// errors), 1 on pre-flight or top-level failure.
func (a *App) Run() int {
	extractor := pdf.New()
	if a.cfg.ParsePDF && !extractor.Available() {
		a.log.Error("%s utility is not installed or not available in PATH", extractor.Command)
		a.log.Error("Install the poppler-utils package (or equivalent) to use -parse-pdf")
		return 1
	}

	absRoot, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path %q: %v", a.cfg.RootDir, err)
		return 1
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory %q not found.", absRoot)
		} else {
			a.log.Error("Could not access root directory %q: %v", absRoot, err)
		}
		return 1
	}
	if !info.IsDir() {
		a.log.Error("Specified path %q is not a directory.", absRoot)
		return 1
	}

	includes := splitPatterns(a.cfg.Include)
	var excludes []string
	if len(includes) == 0 && !a.cfg.IncludeAll {
		excludes = append(splitPatterns(a.cfg.Exclude), DefaultExcludes...)
	}

	var matchers ignore.MatcherSet
	if !a.cfg.AllowIgnored {
		matchers = ignore.Load(absRoot, a.log)
	}

	fcfg := &filter.Config{
		Extensions:   parseExtensions(a.cfg.Extensions),
		Exclude:      excludes,
		Include:      includes,
		AllowIgnored: a.cfg.AllowIgnored,
		ParsePDF:     a.cfg.ParsePDF,
	}

	p := printer.New().
		WithOutput(a.Output).
		WithLogger(a.log).
		WithSkipBinary(a.cfg.SkipBinary)
	if a.cfg.ParsePDF {
		p.WithPDF(extractor)
	}

	a.log.Debug("Scanning directory: %s", absRoot)
	err = walker.Walk(absRoot, fcfg, matchers,
		func(absPath, relPath string) {
			p.PrintFile(absPath, relPath)
		},
		walker.WithLogger(a.log),
		walker.WithMaxDepth(a.cfg.MaxDepth),
		walker.WithFollowLinks(a.cfg.FollowLinks),
	)
	if err != nil {
		a.log.Error("Fatal error: %v", err)
		return 1
	}

	a.log.Debug("Emitted %d file block(s).", p.Count())
	return 0
}

// splitPatterns turns a comma-separated flag value into a pattern list.
func splitPatterns(value string) []string {
	if value == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// parseExtensions normalizes a comma-separated extension list to a set of
// lowercase, dot-prefixed extensions.
func parseExtensions(value string) map[string]struct{} {
	if value == "" {
		return nil
	}
	exts := make(map[string]struct{})
	for _, ext := range strings.Split(value, ",") {
		ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if ext != "" {
			exts["."+ext] = struct{}{}
		}
	}
	return exts
}
