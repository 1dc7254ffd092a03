//go:build windows

// Package ansi prepares terminals for ANSI escape sequences.
package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI turns on virtual terminal processing for f and reports whether it succeeded.
func EnableANSI(f *os.File) bool {
	if f == nil {
		return false
	}

	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
