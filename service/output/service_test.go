package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/hello-docker/model"
)

var sampleGreeting = model.Greeting{
	Message:        model.GreetingText,
	RuntimeVersion: "go1.24.6 (gc linux/amd64)",
	Platform:       "Linux-6.8.0-x86_64",
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) WriteGreetingText(io.Writer, model.Greeting) error {
	r.calls = append(r.calls, "text")
	return nil
}

func (r *recordingRenderer) WriteGreetingTable(io.Writer, model.Greeting) error {
	r.calls = append(r.calls, "table")
	return nil
}

func (r *recordingRenderer) WriteGreetingJSON(io.Writer, model.Greeting) error {
	r.calls = append(r.calls, "json")
	return nil
}

func (r *recordingRenderer) WriteVersion(io.Writer, model.VersionInfo) error {
	r.calls = append(r.calls, "version")
	return nil
}

func TestRenderGreetingDispatch(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "text", want: "text"},
		{format: "json", want: "json"},
		{format: "table", want: "table"},
		{format: "", want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			renderer := &recordingRenderer{}
			svc := newService(tt.format, io.Discard, renderer)

			require.NoError(t, svc.RenderGreeting(sampleGreeting))
			assert.Equal(t, []string{tt.want}, renderer.calls)
		})
	}
}

func TestTextOutputIsThreeLines(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("text", &buf)

	require.NoError(t, svc.RenderGreeting(sampleGreeting))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Hello, World from Docker Python!", lines[0])
	assert.Equal(t, "Go version: go1.24.6 (gc linux/amd64)", lines[1])
	assert.Equal(t, "Platform: Linux-6.8.0-x86_64", lines[2])
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("json", &buf)

	require.NoError(t, svc.RenderGreeting(sampleGreeting))

	var got model.GreetingJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, BuildGreetingJSON(sampleGreeting), got)
}

func TestTableOutputContainsValues(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("table", &buf)

	require.NoError(t, svc.RenderGreeting(sampleGreeting))

	out := buf.String()
	assert.Contains(t, out, sampleGreeting.Message)
	assert.Contains(t, out, sampleGreeting.RuntimeVersion)
	assert.Contains(t, out, sampleGreeting.Platform)
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("text", &buf)

	require.NoError(t, svc.RenderVersion(model.VersionInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02"}))
	assert.Equal(t, "hello-docker version 1.2.3\ncommit: abc123\nbuilt at: 2026-01-02\n", buf.String())
}

func TestWriteErrorsAreReturned(t *testing.T) {
	for _, format := range []string{"text", "json", "table"} {
		t.Run(format, func(t *testing.T) {
			err := NewService(format, failingWriter{}).RenderGreeting(sampleGreeting)
			assert.ErrorContains(t, err, "broken pipe")
		})
	}
}
