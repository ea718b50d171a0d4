// Package logger provides colored, Printf-style log functions for the CLI.
// All output goes to stderr so it never mixes with command results on stdout.
package logger

import (
	"io"

	"github.com/fatih/color"
)

// Writer is where log lines are written. Tests may swap it out.
var Writer io.Writer = color.Error

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Info logs informational messages in green.
func Info(format string, a ...any) { infoColor.Fprintf(Writer, format, a...) }

// Warn logs warnings in bright magenta.
func Warn(format string, a ...any) { warnColor.Fprintf(Writer, format, a...) }

// Error logs errors in red.
func Error(format string, a ...any) { errorColor.Fprintf(Writer, format, a...) }

// Debug logs in cyan when enabled through Init, otherwise it does nothing.
var Debug = func(format string, a ...any) {}

var debugOn bool

// Init switches debug logging on or off.
func Init(enableDebug bool) {
	debugOn = enableDebug
	if enableDebug {
		Debug = func(format string, a ...any) { debugColor.Fprintf(Writer, format, a...) }
		return
	}
	Debug = func(format string, a ...any) {}
}

// DebugEnabled reports whether Init(true) is in effect.
func DebugEnabled() bool {
	return debugOn
}
