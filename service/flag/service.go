package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/hello-docker/model"
)

var validOutputs = []string{"text", "json", "table"}

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	version := pflag.BoolP("version", "v", false, "Show version information")
	output := pflag.StringP("output", "o", "text", "Output format (text, json, or table)")
	banner := pflag.Bool("banner", false, "Draw the title banner before text output")
	verbose := pflag.Bool("verbose", false, "Write debug logs to stderr")

	pflag.Parse()

	if pflag.NArg() > 0 {
		return model.Flags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(pflag.Args(), " "))
	}

	format := strings.ToLower(strings.TrimSpace(*output))
	if !isValidOutput(format) {
		return model.Flags{}, fmt.Errorf("invalid output format %q (expected one of %s)", *output, strings.Join(validOutputs, ", "))
	}

	flags := model.Flags{
		Version: *version,
		Output:  format,
		Banner:  *banner,
		Verbose: *verbose,
	}

	return flags, nil
}

func isValidOutput(format string) bool {
	for _, v := range validOutputs {
		if v == format {
			return true
		}
	}

	return false
}
