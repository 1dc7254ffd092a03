// Package system queries the Go runtime and the host operating system.
package system

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/thirukguru/hello-docker/model"
)

// ErrEmptyValue is returned when the environment reports an empty version or platform.
var ErrEmptyValue = errors.New("environment reported an empty value")

// NewRuntime creates a new runtime.
func NewRuntime() Runtime {
	return &rt{}
}

// Version returns the version, e.g. "go1.24.6 (gc linux/amd64)".
func (r *rt) Version() (string, error) {
	return formatVersion(runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
}

// Platform returns the host platform descriptor.
func (r *rt) Platform() (string, error) {
	return platform()
}

// Collect builds a greeting from message and the values reported by r.
func Collect(r Runtime, message string) (model.Greeting, error) {
	version, err := r.Version()
	if err != nil {
		return model.Greeting{}, fmt.Errorf("failed to read runtime version: %w", err)
	}

	host, err := r.Platform()
	if err != nil {
		return model.Greeting{}, fmt.Errorf("failed to read platform: %w", err)
	}

	return model.Greeting{
		Message:        message,
		RuntimeVersion: version,
		Platform:       host,
	}, nil
}

func formatVersion(goVersion, compiler, goos, goarch string) (string, error) {
	goVersion = strings.TrimSpace(goVersion)
	if goVersion == "" {
		return "", fmt.Errorf("runtime version: %w", ErrEmptyValue)
	}

	return fmt.Sprintf("%s (%s %s/%s)", goVersion, compiler, goos, goarch), nil
}

// formatPlatform joins the non-empty parts with "-".
func formatPlatform(parts ...string) (string, error) {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return "", fmt.Errorf("platform: %w", ErrEmptyValue)
	}

	return strings.Join(kept, "-"), nil
}
