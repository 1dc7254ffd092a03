package output

import (
	"io"

	"github.com/thirukguru/hello-docker/model"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Renderer defines the interface for drawing a greeting in each format
type Renderer interface {
	WriteGreetingText(w io.Writer, input model.Greeting) error
	WriteGreetingTable(w io.Writer, input model.Greeting) error
	WriteGreetingJSON(w io.Writer, input model.Greeting) error
	WriteVersion(w io.Writer, info model.VersionInfo) error
}

type realRenderer struct{}

// service is the internal implementation
type service struct {
	format   Format
	out      io.Writer
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderGreeting(input model.Greeting) error
	RenderVersion(info model.VersionInfo) error
	Format() Format
}
