// Package printer emits file contents to the output stream.
//
// Each emitted block is a "// <relative path>" header, followed by the file
// text or a bracketed placeholder, followed by a blank line. A file that
// cannot be rendered degrades to a placeholder; it never aborts the run.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"listcontents/internal/logger"
	"listcontents/internal/pdf"
)

// sniffLen is how many leading bytes are inspected for binary detection.
const sniffLen = 1024

// Printer writes file blocks to a configured destination.
type Printer struct {
	out        io.Writer
	log        logger.Logger
	extractor  *pdf.Extractor
	skipBinary bool
	count      int64
}

// New creates a Printer writing to stdout.
func New() *Printer {
	return &Printer{
		out: os.Stdout,
		log: logger.Noop{},
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.out = w
	return p
}

// WithLogger sets the logger used for warnings.
func (p *Printer) WithLogger(log logger.Logger) *Printer {
	if log != nil {
		p.log = log
	}
	return p
}

// WithPDF enables PDF text extraction for .pdf files.
func (p *Printer) WithPDF(extractor *pdf.Extractor) *Printer {
	p.extractor = extractor
	return p
}

// WithSkipBinary makes binary files vanish from the output entirely,
// instead of appearing as a placeholder block.
func (p *Printer) WithSkipBinary(skip bool) *Printer {
	p.skipBinary = skip
	return p
}

// Count returns the number of blocks emitted so far.
func (p *Printer) Count() int64 {
	return p.count
}

// PrintFile emits one block for the file at absPath, headed by relPath.
//
// Precedence: unreadable files get an error placeholder; PDF extraction,
// when enabled, applies to .pdf files before any binary check, so a
// binary-looking PDF still goes through the extractor; files whose first
// bytes contain a NUL get the binary placeholder; content that is not valid
// UTF-8 gets an encoding placeholder; everything else is printed verbatim.
func (p *Printer) PrintFile(absPath, relPath string) {
	if p.skipBinary && p.sniffBinary(absPath) {
		p.log.Debug("printer: skipping binary file %s", relPath)
		return
	}

	f, err := os.Open(absPath)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			p.emit(relPath, "<File not found>")
		case os.IsPermission(err):
			p.emit(relPath, "<Permission denied>")
		default:
			p.emit(relPath, fmt.Sprintf("<Error reading file: %v>", err))
		}
		return
	}
	defer f.Close()

	if p.extractor != nil && strings.EqualFold(filepath.Ext(absPath), ".pdf") {
		p.emit(relPath, p.extractor.Extract(absPath))
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		// Cannot even sniff the file; treat it as binary.
		p.log.Warn("printer: error reading %s: %v", relPath, err)
		p.emit(relPath, "<Binary file>")
		return
	}
	if bytes.IndexByte(head[:n], 0) >= 0 {
		p.emit(relPath, "<Binary file>")
		return
	}

	rest, err := io.ReadAll(f)
	if err != nil {
		p.emit(relPath, fmt.Sprintf("<Error reading file: %v>", err))
		return
	}
	content := append(head[:n:n], rest...)
	if !utf8.Valid(content) {
		p.emit(relPath, "<File contains invalid Unicode characters>")
		return
	}
	p.emit(relPath, string(content))
}

// emit writes a header, a body, and the trailing blank line.
func (p *Printer) emit(relPath, body string) {
	p.count++
	fmt.Fprintf(p.out, "// %s\n", filepath.ToSlash(relPath))
	fmt.Fprintf(p.out, "%s\n\n", body)
}

// sniffBinary reports whether the file's first bytes contain a NUL byte.
// Files that cannot be read are conservatively treated as binary.
func (p *Printer) sniffBinary(absPath string) bool {
	f, err := os.Open(absPath)
	if err != nil {
		p.log.Warn("printer: error checking if file is binary (%s): %v", absPath, err)
		return true
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		p.log.Warn("printer: error checking if file is binary (%s): %v", absPath, err)
		return true
	}
	return bytes.IndexByte(head[:n], 0) >= 0
}
