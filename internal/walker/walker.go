// Package walker performs the depth-first, top-down traversal of the scan
// tree, pruning directories through the path filter before descending.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"listcontents/internal/filter"
	"listcontents/internal/ignore"
)

// WalkFunc is called for every file that passes the filter, with the file's
// absolute path and its path relative to the scan root. Files within a
// directory are delivered in name order, before any subdirectory's files.
type WalkFunc func(absPath, relPath string)

// Walk traverses rootDir and invokes fn for every accepted file.
//
// Rejected directories are pruned: their descendants are never visited.
// Hidden entries (leading dot) are always skipped. A directory whose
// entries cannot be listed logs a warning and yields nothing; only a
// failure to list the root itself is returned as an error.
func Walk(rootDir string, cfg *filter.Config, matchers ignore.MatcherSet, fn WalkFunc, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("walker: failed to resolve root %q: %w", rootDir, err)
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return fmt.Errorf("walker: cannot list root directory: %w", err)
	}

	w := &walker{
		root:     absRoot,
		cfg:      cfg,
		matchers: matchers,
		opts:     options,
		fn:       fn,
	}
	w.walkDir(absRoot, ".", 0)
	return nil
}

type walker struct {
	root     string
	cfg      *filter.Config
	matchers ignore.MatcherSet
	opts     Options
	fn       WalkFunc
}

// walkDir processes one directory. depth is the directory's distance below
// the root in path separators; once it reaches the configured maximum,
// neither the directory's files nor its children are visited.
func (w *walker) walkDir(absDir, relDir string, depth int) {
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		w.opts.Logger.Debug("walker: depth limit reached at %q", relDir)
		return
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		w.opts.Logger.Warn("walker: error walking directory %s: %v", absDir, err)
		return
	}

	var dirs []string

	// os.ReadDir returns entries sorted by name; emit this directory's
	// files first, then descend.
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		absPath := filepath.Join(absDir, name)
		relPath := name
		if relDir != "." {
			relPath = relDir + string(filepath.Separator) + name
		}

		isDir := entry.IsDir()
		if !isDir && entry.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(absPath)
			if err != nil {
				// A dangling link is still handed to the filter as a file,
				// so the printer can emit its not-found placeholder.
				w.opts.Logger.Warn("walker: error resolving symlink %s: %v", relPath, err)
			} else if target.IsDir() {
				if !w.opts.FollowLinks {
					w.opts.Logger.Debug("walker: not following symlinked directory %q", relPath)
					continue
				}
				isDir = true
			}
		}

		if isDir {
			dirs = append(dirs, name)
			continue
		}
		if w.cfg.KeepFile(absPath, relPath, w.matchers) {
			w.fn(absPath, relPath)
		}
	}

	for _, name := range dirs {
		absPath := filepath.Join(absDir, name)
		relPath := name
		if relDir != "." {
			relPath = relDir + string(filepath.Separator) + name
		}
		if !w.cfg.KeepDir(absPath, relPath, w.matchers) {
			w.opts.Logger.Debug("walker: pruned directory %q", relPath)
			continue
		}
		w.walkDir(absPath, relPath, depth+1)
	}
}
