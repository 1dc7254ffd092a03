// Package main is the entry point for the hello-docker application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/hello-docker/model"
	"github.com/thirukguru/hello-docker/service/flag"
	"github.com/thirukguru/hello-docker/service/greeter"
	"github.com/thirukguru/hello-docker/service/output"
	"github.com/thirukguru/hello-docker/service/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	logger, err := newLogger(flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	greeterService := greeter.NewService(
		system.NewRuntime(),
		output.NewService(flags.Output, stdout),
		versionInfo,
		stdout,
		logger,
	)

	return greeterService.Orchestrate(flags)
}

// newLogger returns a no-op logger unless verbose is set, so stderr stays empty on normal runs.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	return config.Build()
}
