package system

// Runtime reports facts about the environment the binary is running in.
type Runtime interface {
	// Version returns the Go runtime version together with the compiler and target.
	Version() (string, error)
	// Platform returns an "<os>-<release>-<machine>" descriptor of the host.
	Platform() (string, error)
}

// rt is the default implementation of the Runtime interface.
type rt struct{}
