package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the path to the run log, relative to the working directory (project root when run via go run ./cmd/instancing).
const LogFilePath = "logs/instancing.txt"

// Logger is a slog.Logger whose text output goes to stderr and is also appended to a file on disk.
// Every line written is kept in memory so it can be inspected (e.g. by tests) with Lines.
type Logger struct {
	*slog.Logger
	sink *fileSink
}

// Options configures New. Zero values mean: LogFilePath, stderr, info level.
type Options struct {
	Path string
	// MemoryOnly skips the log file; lines still go to Console and Lines.
	MemoryOnly bool
	Console    io.Writer
	Level      slog.Leveler
}

// New returns a Logger and, unless MemoryOnly is set, ensures the log directory exists. If the
// directory cannot be created the logger still works; file writes are skipped.
func New(opts Options) *Logger {
	switch {
	case opts.MemoryOnly:
		opts.Path = ""
	case opts.Path == "":
		opts.Path = LogFilePath
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	if opts.Path != "" {
		_ = os.MkdirAll(filepath.Dir(opts.Path), 0755)
	}
	sink := &fileSink{path: opts.Path, lines: make([]string, 0)}
	h := slog.NewTextHandler(io.MultiWriter(opts.Console, sink), &slog.HandlerOptions{Level: opts.Level})
	return &Logger{Logger: slog.New(h), sink: sink}
}

// Discard returns a logger that drops everything. Packages that take an
// optional logger fall back to it.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	return l.sink.Lines()
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a slog level. Anything else is info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// fileSink stores lines in memory and appends them to the log file. The slog handler writes one
// record per Write call.
type fileSink struct {
	mu    sync.Mutex
	path  string
	lines []string
}

func (s *fileSink) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()

	if s.path == "" {
		return len(p), nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return len(p), nil
	}
	_, _ = f.Write(p)
	_ = f.Close()
	return len(p), nil
}

func (s *fileSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
