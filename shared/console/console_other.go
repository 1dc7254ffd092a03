//go:build !windows

// Package console inspects the attributes of the attached terminal.
package console

import (
	"os"
	"strings"
)

// IsBlueBackground returns true if the terminal background color is blue.
func IsBlueBackground() bool {
	return blueInColorFGBG(os.Getenv("COLORFGBG"))
}

// blueInColorFGBG reads the "fg;bg" (or "fg;other;bg") form set by rxvt and friends.
func blueInColorFGBG(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// 4 is blue, 12 is bright blue.
	return bg == "4" || bg == "12"
}
