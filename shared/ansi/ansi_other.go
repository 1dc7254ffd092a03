//go:build !windows

// Package ansi prepares terminals for ANSI escape sequences.
package ansi

import (
	"os"

	"golang.org/x/term"
)

// EnableANSI reports whether f is a terminal that can show ANSI colours. Unix terminals need no setup.
func EnableANSI(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
