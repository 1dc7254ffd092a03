// Package output provides a service for rendering results to the console.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/hello-docker/model"
)

// NewService creates a new output service with the specified format
func NewService(format string, out io.Writer) Service {
	return newService(format, out, &realRenderer{})
}

func newService(format string, out io.Writer, renderer Renderer) *service {
	f := FormatText
	switch format {
	case "json":
		f = FormatJSON
	case "table":
		f = FormatTable
	}

	return &service{
		format:   f,
		out:      out,
		renderer: renderer,
	}
}

func (s *service) Format() Format {
	return s.format
}

func (s *service) RenderGreeting(input model.Greeting) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.WriteGreetingJSON(s.out, input)
	case FormatTable:
		return s.renderer.WriteGreetingTable(s.out, input)
	default:
		return s.renderer.WriteGreetingText(s.out, input)
	}
}

func (s *service) RenderVersion(info model.VersionInfo) error {
	return s.renderer.WriteVersion(s.out, info)
}

// WriteGreetingText writes the greeting, version and platform lines.
func (r *realRenderer) WriteGreetingText(w io.Writer, input model.Greeting) error {
	return writeLines(w,
		input.Message,
		"Go version: "+input.RuntimeVersion,
		"Platform: "+input.Platform,
	)
}

func (r *realRenderer) WriteGreetingTable(w io.Writer, input model.Greeting) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Greeting", input.Message})
	t.AppendRow(table.Row{"Go version", input.RuntimeVersion})
	t.AppendRow(table.Row{"Platform", input.Platform})
	t.SetStyle(table.StyleRounded)

	return writeLines(w, t.Render())
}

func (r *realRenderer) WriteGreetingJSON(w io.Writer, input model.Greeting) error {
	return printJSON(w, BuildGreetingJSON(input))
}

func (r *realRenderer) WriteVersion(w io.Writer, info model.VersionInfo) error {
	return writeLines(w,
		fmt.Sprintf("hello-docker version %s", info.Version),
		fmt.Sprintf("commit: %s", info.Commit),
		fmt.Sprintf("built at: %s", info.Date),
	)
}

// BuildGreetingJSON builds the greeting JSON model.
func BuildGreetingJSON(input model.Greeting) model.GreetingJSON {
	return model.GreetingJSON{
		Greeting: input.Message,
		Version:  input.RuntimeVersion,
		Platform: input.Platform,
	}
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return writeLines(w, string(data))
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}
