// Package logx is a small leveled logger. The terminal belongs to the UI,
// so output goes to a file or nowhere.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Fields are structured key/value pairs appended to a log line.
type Fields map[string]interface{}

// Setup routes log output to path via bubbletea's file logger. An empty path
// discards all output. The returned closer must be closed on exit.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "polytone")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// SetOutput sends log lines to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Info logs an informational message with structured fields.
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error with structured fields.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

// Debug logs only when POLYTONE_DEBUG is set.
func Debug(msg string, fields Fields) {
	if os.Getenv("POLYTONE_DEBUG") == "" {
		return
	}
	log.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
