// Package filter decides which files and directories a scan visits.
//
// Decisions are pure functions of the relative path, the configured
// patterns, and the ignore matchers; nothing here touches the filesystem.
// Include mode and exclude mode are mutually exclusive: when include
// patterns are present, exclude patterns are not consulted at all.
package filter

import (
	"path/filepath"
	"strings"

	"listcontents/internal/ignore"
)

// Config is the immutable filtering configuration for one run.
type Config struct {
	// Extensions restricts files to the given lowercase extensions
	// (including the leading dot). Empty means all extensions.
	Extensions map[string]struct{}

	// Exclude patterns, consulted only when Include is empty.
	Exclude []string

	// Include patterns. Non-empty switches the run into include mode.
	Include []string

	// AllowIgnored disables .gitignore matching entirely.
	AllowIgnored bool

	// ParsePDF admits .pdf files regardless of the extension filter.
	ParsePDF bool
}

// KeepDir decides whether the walker may descend into a directory.
// relPath is the directory's path relative to the scan root.
//
// In include mode a directory is kept when it is an ancestor or a
// descendant of an include pattern, compared segment-wise, so traversal can
// reach the included targets. In exclude mode it is kept unless an exclude
// pattern matches. A surviving directory is still pruned when an in-scope
// ignore matcher flags it.
func (c *Config) KeepDir(absPath, relPath string, matchers ignore.MatcherSet) bool {
	rel := filepath.ToSlash(relPath)

	if len(c.Include) > 0 {
		keep := false
		for _, pattern := range c.Include {
			p := strings.TrimSuffix(filepath.ToSlash(pattern), "/")
			if p == "" {
				continue
			}
			if rel == p || strings.HasPrefix(rel, p+"/") || strings.HasPrefix(p, rel+"/") {
				keep = true
				break
			}
		}
		if !keep {
			return false
		}
	} else if matchesExclude(rel, c.Exclude) {
		return false
	}

	if !c.AllowIgnored && matchers.Ignored(absPath, true) {
		return false
	}
	return true
}

// KeepFile decides whether a file is emitted. relPath is the file's path
// relative to the scan root.
//
// Include/exclude patterns are applied first, then ignore matchers, then
// the extension filter. PDF files bypass the extension filter when PDF
// parsing is enabled, so a run like "-ext py -parse-pdf" still emits PDFs.
func (c *Config) KeepFile(absPath, relPath string, matchers ignore.MatcherSet) bool {
	rel := filepath.ToSlash(relPath)

	if len(c.Include) > 0 {
		if !matchesInclude(rel, c.Include) {
			return false
		}
	} else if matchesExclude(rel, c.Exclude) {
		return false
	}

	if !c.AllowIgnored && matchers.Ignored(absPath, false) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(rel))
	if c.ParsePDF && ext == ".pdf" {
		return true
	}
	if len(c.Extensions) == 0 {
		return true
	}
	_, ok := c.Extensions[ext]
	return ok
}
