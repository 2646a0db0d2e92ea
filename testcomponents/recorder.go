package testcomponents

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vcrobe/nojs-grid/console"
)

// LogEntry is one captured diagnostic line.
type LogEntry struct {
	Level   string
	Message string
}

// LogRecorder implements console.Logger and captures every diagnostic so
// tests can assert on what the component reported.
type LogRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ console.Logger = (*LogRecorder)(nil)

// CaptureLogs installs a fresh recorder as the active logger and returns it
// together with a restore func for t.Cleanup.
func CaptureLogs() (*LogRecorder, func()) {
	rec := &LogRecorder{}
	prev := console.SetLogger(rec)
	return rec, func() { console.SetLogger(prev) }
}

func (r *LogRecorder) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *LogRecorder) Debug(format string, args ...any) { r.record("debug", format, args...) }
func (r *LogRecorder) Info(format string, args ...any)  { r.record("info", format, args...) }
func (r *LogRecorder) Warn(format string, args ...any)  { r.record("warn", format, args...) }
func (r *LogRecorder) Error(format string, args ...any) { r.record("error", format, args...) }

// Entries returns a copy of everything captured so far.
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many entries at the given level contain substr.
func (r *LogRecorder) Count(level, substr string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

// Last returns the most recent entry at the given level, if any.
func (r *LogRecorder) Last(level string) (LogEntry, bool) {
	entries := r.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Level == level {
			return entries[i], true
		}
	}
	return LogEntry{}, false
}

// Reset drops everything captured so far.
func (r *LogRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
