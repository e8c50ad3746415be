package main

// Exit codes. Usage mistakes and the outcomes of store operations (missing
// names, collisions, malformed files) all exit with ExitSuccess.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid input, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, unresolvable path)
	ExitDataError   = 3 // Data error (malformed store file where one is required)
)
