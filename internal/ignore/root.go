package ignore

import (
	"os"
	"path/filepath"
)

// FindGitRoot walks upward from start looking for a directory containing a
// .git entry. It returns the nearest such ancestor, or ok=false when the
// filesystem root is reached without finding one. Not being inside a
// repository is a valid negative result, never an error.
func FindGitRoot(start string) (root string, ok bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
