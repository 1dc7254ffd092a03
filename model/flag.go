package model

// Flags represents the command line flags.
type Flags struct {
	Version bool
	Output  string
	Banner  bool
	Verbose bool
}
