//go:build windows

// Package console inspects the attributes of the attached terminal.
package console

import "golang.org/x/sys/windows"

// backgroundBlue is the BACKGROUND_BLUE character attribute of a console screen buffer.
const backgroundBlue = 0x0010

// IsBlueBackground reports whether the stdout screen buffer paints text on a blue background.
// Redirected output has no screen buffer and reports false.
func IsBlueBackground() bool {
	var info windows.ConsoleScreenBufferInfo
	if windows.GetConsoleScreenBufferInfo(windows.Stdout, &info) != nil {
		return false
	}

	return info.Attributes&backgroundBlue == backgroundBlue
}
