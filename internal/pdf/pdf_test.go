package pdf

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.False(t, New(WithCommand("listcontents-missing-helper")).Available())
	if runtime.GOOS != "windows" {
		assert.True(t, New(WithCommand("sh")).Available())
	}
}

func TestExtractUtilityNotFound(t *testing.T) {
	e := New(WithCommand("listcontents-missing-helper"))
	got := e.Extract("whatever.pdf")
	assert.Equal(t, "<listcontents-missing-helper utility not found>", got)
}

func TestExtractReturnsStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a shell")
	}
	script := filepath.Join(t.TempDir(), "fake-pdftotext")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho extracted text for \"$1\"\n"), 0o755))

	e := New(WithCommand(script))
	got := e.Extract("doc.pdf")
	assert.Equal(t, "extracted text for doc.pdf\n", got)
}

func TestExtractNonzeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a shell")
	}
	script := filepath.Join(t.TempDir(), "broken-pdftotext")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'corrupt file' >&2\nexit 3\n"), 0o755))

	e := New(WithCommand(script))
	got := e.Extract("doc.pdf")
	assert.Equal(t, "<Error extracting PDF text: corrupt file>", got)
}

func TestExtractTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a shell")
	}
	script := filepath.Join(t.TempDir(), "slow-pdftotext")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nsleep 5\n"), 0o755))

	e := New(WithCommand(script), WithTimeout(100*time.Millisecond))
	got := e.Extract("doc.pdf")
	assert.Contains(t, got, "timed out")
}
