// Package logger is the printf-style logging interface shared by hostdash
// components. Output goes through the standard log package, so redirecting
// it (the TUI does so with tea.LogToFile) redirects every component.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv enables Debug output when set to any non-empty value.
const DebugEnv = "HOSTDASH_DEBUG"

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type envLogger struct {
	prefix string
}

// New returns a logger that tags every line with prefix, e.g. "[scheduler]".
func New(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) printf(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case l.prefix != "" && level != "":
		log.Printf("%s %s: %s", l.prefix, level, msg)
	case l.prefix != "":
		log.Printf("%s %s", l.prefix, msg)
	case level != "":
		log.Printf("%s: %s", level, msg)
	default:
		log.Print(msg)
	}
}

func (l *envLogger) Debug(format string, args ...any) {
	if os.Getenv(DebugEnv) != "" {
		l.printf("DEBUG", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any)  { l.printf("", format, args...) }
func (l *envLogger) Warn(format string, args ...any)  { l.printf("WARN", format, args...) }
func (l *envLogger) Error(format string, args ...any) { l.printf("ERROR", format, args...) }

type noop struct{}

// Noop discards everything.
func Noop() Logger { return noop{} }

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// Entry is one captured message.
type Entry struct {
	Level   string
	Message string
}

// Buffer captures messages for test assertions.
type Buffer struct {
	Entries []Entry
}

func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) add(level, format string, args ...any) {
	b.Entries = append(b.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (b *Buffer) Debug(format string, args ...any) { b.add("debug", format, args...) }
func (b *Buffer) Info(format string, args ...any)  { b.add("info", format, args...) }
func (b *Buffer) Warn(format string, args ...any)  { b.add("warn", format, args...) }
func (b *Buffer) Error(format string, args ...any) { b.add("error", format, args...) }

// Count returns how many messages were captured at level.
func (b *Buffer) Count(level string) int {
	n := 0
	for _, e := range b.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// HasLevel reports whether anything was captured at level.
func (b *Buffer) HasLevel(level string) bool { return b.Count(level) > 0 }

func (b *Buffer) Reset() { b.Entries = b.Entries[:0] }

var std = New("")

// Default returns the process-wide logger.
func Default() Logger { return std }

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) { std = l }
