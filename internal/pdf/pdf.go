// Package pdf extracts text from PDF files via the external pdftotext
// utility. Failures never cross this boundary as errors: every outcome is
// either the extracted text or a bracketed placeholder string suitable for
// inline emission.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultCommand is the conversion utility expected on PATH.
	DefaultCommand = "pdftotext"

	// DefaultTimeout bounds a single extraction.
	DefaultTimeout = 30 * time.Second
)

// Extractor invokes the conversion utility for individual files.
type Extractor struct {
	Command string
	Timeout time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCommand overrides the conversion utility name or path.
func WithCommand(command string) Option {
	return func(e *Extractor) {
		if command != "" {
			e.Command = command
		}
	}
}

// WithTimeout overrides the per-file extraction timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Extractor) {
		if timeout > 0 {
			e.Timeout = timeout
		}
	}
}

// New creates an Extractor with the default command and timeout.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		Command: DefaultCommand,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available reports whether the conversion utility can be found on PATH.
// Checked once before any traversal starts.
func (e *Extractor) Available() bool {
	_, err := exec.LookPath(e.Command)
	return err == nil
}

// Extract runs the utility against path and returns the extracted text, or
// a bracketed placeholder describing the failure.
func (e *Extractor) Extract(path string) string {
	ctx, cancel := context.WithTimeout(context.Background(), e.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.Command, path, "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Sprintf("<PDF text extraction timed out after %d seconds>", int(e.Timeout.Seconds()))
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Sprintf("<%s utility not found>", e.Command)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Sprintf("<Error extracting PDF text: %s>", strings.TrimSpace(stderr.String()))
		}
		return fmt.Sprintf("<Error extracting PDF text: %v>", err)
	}
	return stdout.String()
}
