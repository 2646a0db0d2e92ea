package console

import (
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// Logger is the sink for framework diagnostics. The default implementation
// writes to the browser console under js/wasm builds and to stderr elsewhere.
// Tests swap in a recorder via SetLogger.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	mu      sync.RWMutex
	current Logger = newDefaultLogger()
)

// SetLogger replaces the active logger and returns the previous one so
// callers (typically tests) can restore it.
func SetLogger(l Logger) Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	if l == nil {
		l = newDefaultLogger()
	}
	current = l
	return prev
}

func active() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debug emits a debug-level diagnostic.
func Debug(format string, args ...any) {
	active().Debug(format, args...)
}

// Info emits an info-level diagnostic.
func Info(format string, args ...any) {
	active().Info(format, args...)
}

// Warn emits a warning-level diagnostic.
func Warn(format string, args ...any) {
	active().Warn(format, args...)
}

// Error emits an error-level diagnostic.
func Error(format string, args ...any) {
	active().Error(format, args...)
}

// Dump emits a debug-level deep dump of a value, labelled for grepping.
func Dump(label string, v any) {
	active().Debug("%s: %s", label, spew.Sdump(v))
}
