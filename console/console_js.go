//go:build js || wasm
// +build js wasm

package console

import (
	"fmt"
	"syscall/js"
)

// jsLogger forwards diagnostics to the browser console so they show up in
// devtools with the right severity.
type jsLogger struct{}

func newDefaultLogger() Logger {
	return jsLogger{}
}

func (jsLogger) call(method, format string, args ...any) {
	js.Global().Get("console").Call(method, fmt.Sprintf(format, args...))
}

func (l jsLogger) Debug(format string, args ...any) { l.call("debug", format, args...) }
func (l jsLogger) Info(format string, args ...any)  { l.call("info", format, args...) }
func (l jsLogger) Warn(format string, args ...any)  { l.call("warn", format, args...) }
func (l jsLogger) Error(format string, args ...any) { l.call("error", format, args...) }
