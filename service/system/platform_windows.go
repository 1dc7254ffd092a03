//go:build windows

package system

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

func platform() (string, error) {
	info := windows.RtlGetVersion()
	if info == nil {
		return "", fmt.Errorf("RtlGetVersion: %w", ErrEmptyValue)
	}

	release := fmt.Sprintf("%d.%d.%d", info.MajorVersion, info.MinorVersion, info.BuildNumber)

	return formatPlatform("Windows", release, runtime.GOARCH)
}
