//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func platform() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return formatPlatform(
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Machine[:]),
	)
}
