package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"listcontents/internal/logger"
)

// Load discovers every .gitignore governing startDir and compiles each into
// a scoped Matcher. When startDir lies inside a git repository, the whole
// repository tree is scanned so rules above the start directory still apply;
// otherwise the scan runs downward from startDir only. The repository's
// .git directory is never entered.
//
// A .gitignore that cannot be compiled logs a warning and contributes no
// rules; a directory that cannot be listed logs a warning and yields
// nothing. Loading is never fatal.
func Load(startDir string, log logger.Logger) MatcherSet {
	if log == nil {
		log = logger.Noop{}
	}

	scanRoot, err := filepath.Abs(startDir)
	if err != nil {
		log.Warn("ignore: cannot resolve %q: %v", startDir, err)
		return nil
	}
	if root, ok := FindGitRoot(scanRoot); ok {
		log.Debug("ignore: found git repository at %s", root)
		scanRoot = root
	}

	var set MatcherSet
	var scan func(dir string)
	scan = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("ignore: error scanning %s for ignore files: %v", dir, err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if name == ".git" {
					continue
				}
				scan(filepath.Join(dir, name))
				continue
			}
			if name != ".gitignore" {
				continue
			}
			path := filepath.Join(dir, name)
			rules, err := gitignore.NewFromFile(path)
			if err != nil {
				log.Warn("ignore: error parsing %s: %v", path, err)
				continue
			}
			set = append(set, &Matcher{Scope: dir, rules: rules})
		}
	}
	scan(scanRoot)

	log.Debug("ignore: loaded %d ignore file(s) under %s", len(set), scanRoot)
	return set
}
