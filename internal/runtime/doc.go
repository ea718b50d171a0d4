// Package runtime runs the external tools the scaffolding pipeline depends on
// (the project generator and the package manager). Every invocation goes
// through the Runner interface, which turns a non-zero exit into a
// *CommandError carrying the tool's own error text.
package runtime
