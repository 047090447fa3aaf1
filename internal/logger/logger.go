package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is used when New is given an empty path.
const DefaultPath = "logs/scene.txt"

// Logger keeps the most recent lines in memory (for the terminal overlay) and appends every line
// to a file on disk. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	path  string
	keep  int
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and keeping at most keep lines in memory (0 = unbounded).
// The log directory is created if needed.
func New(path string, keep int) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, keep: keep, lines: make([]string, 0), now: time.Now}
}

// Log records one line prefixed with [timestamp] in local time.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if l.keep > 0 && len(l.lines) > l.keep {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-l.keep:]...)
	}
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the lines held in memory.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Path is the file lines are appended to.
func (l *Logger) Path() string {
	return l.path
}
