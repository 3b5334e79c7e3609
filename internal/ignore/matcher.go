// Package ignore discovers .gitignore files and applies their rules, each
// scoped to the directory tree below the file that declared them.
package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// Matcher pairs a compiled .gitignore with the directory it governs.
// A path is only checked against the rules when it lies within Scope.
type Matcher struct {
	// Scope is the absolute path of the directory containing the ignore file.
	Scope string

	rules gitignore.GitIgnore
}

// Ignored reports whether absPath is flagged by this matcher's rules.
// Paths outside the matcher's scope are never flagged. Negation rules in
// the ignore file are honored.
func (m *Matcher) Ignored(absPath string, isDir bool) bool {
	rel, err := filepath.Rel(m.Scope, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	match := m.rules.Relative(filepath.ToSlash(rel), isDir)
	return match != nil && match.Ignore()
}

// MatcherSet holds every matcher discovered for a run, in discovery order.
type MatcherSet []*Matcher

// Ignored reports whether any in-scope matcher flags absPath.
func (s MatcherSet) Ignored(absPath string, isDir bool) bool {
	for _, m := range s {
		if m.Ignored(absPath, isDir) {
			return true
		}
	}
	return false
}
