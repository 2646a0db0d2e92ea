//go:build !js && !wasm
// +build !js,!wasm

package console

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// nativeLogger writes to stderr with per-level coloring. Used when the
// framework runs outside the browser (tests, tooling).
type nativeLogger struct{}

func newDefaultLogger() Logger {
	return nativeLogger{}
}

func (nativeLogger) write(c *color.Color, level, format string, args ...any) {
	fmt.Fprintln(os.Stderr, c.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...)))
}

func (l nativeLogger) Debug(format string, args ...any) {
	l.write(color.New(color.Faint), "debug", format, args...)
}

func (l nativeLogger) Info(format string, args ...any) {
	l.write(color.New(color.FgGreen), "info", format, args...)
}

func (l nativeLogger) Warn(format string, args ...any) {
	l.write(color.New(color.FgYellow), "warn", format, args...)
}

func (l nativeLogger) Error(format string, args ...any) {
	l.write(color.New(color.FgRed), "error", format, args...)
}
