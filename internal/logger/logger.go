// Package logger provides leveled, optionally colorized logging to a writer.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Logger is the minimal logging interface the other packages depend on.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Level defines log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Console is a Logger writing timestamped lines to an io.Writer.
type Console struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Console logger. Verbose enables debug-level output.
func New(out io.Writer, verbose bool, useColors bool) *Console {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return &Console{out: out, useColors: useColors, level: level}
}

func (l *Console) log(level Level, prefix string, colorize func(format string, a ...interface{}) string, format string, args ...interface{}) {
	if l.level > level {
		return
	}
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

func (l *Console) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

func (l *Console) Info(format string, args ...interface{}) {
	l.log(LevelInfo, "INFO", color.BlueString, format, args...)
}

func (l *Console) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, "WARN", color.YellowString, format, args...)
}

func (l *Console) Error(format string, args ...interface{}) {
	l.log(LevelError, "ERROR", color.RedString, format, args...)
}

// Noop is a Logger that discards everything. Useful as a default in
// packages that accept an optional logger.
type Noop struct{}

func (Noop) Debug(format string, args ...interface{}) {}
func (Noop) Info(format string, args ...interface{})  {}
func (Noop) Warn(format string, args ...interface{})  {}
func (Noop) Error(format string, args ...interface{}) {}
