//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package system

import "runtime"

func platform() (string, error) {
	return formatPlatform(runtime.GOOS, runtime.GOARCH)
}
