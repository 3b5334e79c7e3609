package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		patterns []string
		want     bool
	}{
		{"no patterns", "src/main.py", nil, false},
		{"directory pattern matches top-level dir", "node_modules", []string{"node_modules/"}, true},
		{"directory pattern matches contents", "node_modules/pkg/index.js", []string{"node_modules/"}, true},
		{"directory pattern matches nested dir", "web/node_modules/pkg", []string{"node_modules/"}, true},
		{"directory pattern leaves sibling alone", "app.js", []string{"node_modules/"}, false},
		{"exact filename", "yarn.lock", []string{"yarn.lock"}, true},
		{"filename in subdirectory", "web/yarn.lock", []string{"yarn.lock"}, true},
		{"bare pattern matches top-level dir contents", "build/out.txt", []string{"build"}, true},
		{"glob against filename", "src/debug.log", []string{"*.log"}, true},
		{"glob against relative path", "src/gen/x.py", []string{"src/gen/*"}, true},
		{"glob miss", "src/main.py", []string{"*.log"}, false},
		{"case sensitive", "README.MD", []string{"*.md"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesExclude(tt.rel, tt.patterns))
		})
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		patterns []string
		want     bool
	}{
		{"no patterns includes nothing", "src/main.py", nil, false},
		{"glob against relative path", "src/a.py", []string{"src/*.py"}, true},
		{"glob does not match other extension", "src/b.txt", []string{"src/*.py"}, false},
		{"glob does not match other directory", "lib/c.py", []string{"src/*.py"}, false},
		{"glob against bare filename", "deep/nested/main.py", []string{"main.py"}, true},
		{"directory pattern with slash", "auth/token.go", []string{"auth/"}, true},
		{"directory name without slash", "auth/token.go", []string{"auth"}, true},
		{"directory itself", "auth", []string{"auth"}, true},
		{"unrelated path", "other/token.go", []string{"auth"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesInclude(tt.rel, tt.patterns))
		})
	}
}

func TestKeepDirIncludeMode(t *testing.T) {
	cfg := &Config{Include: []string{"src/gen/out"}}

	// Ancestors and descendants of the include target stay traversable.
	assert.True(t, cfg.KeepDir("/p/src", "src", nil))
	assert.True(t, cfg.KeepDir("/p/src/gen", "src/gen", nil))
	assert.True(t, cfg.KeepDir("/p/src/gen/out", "src/gen/out", nil))
	assert.True(t, cfg.KeepDir("/p/src/gen/out/deep", "src/gen/out/deep", nil))

	// Unrelated trees are pruned.
	assert.False(t, cfg.KeepDir("/p/lib", "lib", nil))

	// Prefix relations only hold at path-segment boundaries: the pattern
	// "src/..." must not keep a directory that merely shares a string prefix.
	assert.False(t, cfg.KeepDir("/p/src2", "src2", nil))
}

func TestKeepDirExcludeMode(t *testing.T) {
	cfg := &Config{Exclude: []string{"node_modules/"}}

	assert.False(t, cfg.KeepDir("/p/node_modules", "node_modules", nil))
	assert.True(t, cfg.KeepDir("/p/src", "src", nil))
}

func TestKeepFileExtensionFilter(t *testing.T) {
	cfg := &Config{Extensions: map[string]struct{}{".py": {}}}

	assert.True(t, cfg.KeepFile("/p/src/a.py", "src/a.py", nil))
	assert.False(t, cfg.KeepFile("/p/src/b.txt", "src/b.txt", nil))

	// Extension comparison is case-insensitive.
	assert.True(t, cfg.KeepFile("/p/src/C.PY", "src/C.PY", nil))
}

func TestKeepFilePDFOverridesExtensionFilter(t *testing.T) {
	cfg := &Config{
		Extensions: map[string]struct{}{".py": {}},
		ParsePDF:   true,
	}

	assert.True(t, cfg.KeepFile("/p/doc.pdf", "doc.pdf", nil))
	assert.False(t, cfg.KeepFile("/p/doc.txt", "doc.txt", nil))

	// Without PDF mode the extension filter applies to PDFs too.
	cfg.ParsePDF = false
	assert.False(t, cfg.KeepFile("/p/doc.pdf", "doc.pdf", nil))
}

func TestIncludeModeIgnoresExcludePatterns(t *testing.T) {
	cfg := &Config{
		Include: []string{"src/*.py"},
		Exclude: []string{"src/"},
	}

	// Exclude patterns are not consulted once include patterns exist.
	assert.True(t, cfg.KeepFile("/p/src/a.py", "src/a.py", nil))
	assert.True(t, cfg.KeepDir("/p/src", "src", nil))
}

func TestKeepFileNoFiltersKeepsEverything(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.KeepFile("/p/anything.bin", "anything.bin", nil))
}
