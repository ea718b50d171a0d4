// Package progress reports pipeline progress on the terminal.
//
// Bar redraws a single line with a percentage and a status label. Plain
// prints one line per step and is used when the terminal cannot be
// redrawn in place. Both satisfy Reporter.
package progress
