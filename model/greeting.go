package model

// GreetingText is the fixed first line printed on every run.
const GreetingText = "Hello, World from Docker Python!"

// Greeting holds the values printed by a single run. Nothing in it outlives the run.
type Greeting struct {
	Message        string
	RuntimeVersion string
	Platform       string
}

// GreetingJSON is the JSON shape of a Greeting.
type GreetingJSON struct {
	Greeting string `json:"greeting"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
}
