package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// matchesExclude reports whether the slash-normalized relative path matches
// any exclude pattern.
//
// A pattern ending in "/" names a whole directory: it matches the directory
// itself, anything under it, and any path containing it as a segment. Any
// other pattern matches the exact relative path, a path segment of it, the
// bare filename, or as a shell-style glob against either the filename or
// the full relative path. Matching is case-sensitive.
func matchesExclude(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		p := filepath.ToSlash(pattern)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "/") {
			name := strings.TrimSuffix(p, "/")
			if rel == name ||
				strings.HasPrefix(rel, p) ||
				strings.Contains(rel, "/"+name+"/") ||
				strings.HasSuffix(rel, "/"+name) {
				return true
			}
			continue
		}
		base := path.Base(rel)
		if rel == p ||
			strings.Contains("/"+rel, "/"+p) ||
			base == p ||
			fnmatch.Match(p, base, 0) ||
			fnmatch.Match(p, rel, 0) {
			return true
		}
	}
	return false
}

// matchesInclude reports whether the slash-normalized relative path matches
// any include pattern.
//
// A pattern ending in "/" matches anything under that directory. Any other
// pattern matches as a glob against the relative path or the bare filename,
// or names a directory the path lives in (exact match or segment prefix).
func matchesInclude(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		p := filepath.ToSlash(pattern)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(rel, p) {
				return true
			}
			continue
		}
		if fnmatch.Match(p, rel, 0) || fnmatch.Match(p, path.Base(rel), 0) {
			return true
		}
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}
