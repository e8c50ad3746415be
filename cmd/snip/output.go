package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Plain-text messages. These match the historical output of the tool.
const (
	msgNoSnippets  = "No snippets were found."
	msgSyntaxError = "Syntax error found in %s"
	msgListEntry   = "%s: %s"
	msgAdded       = "%s added"
	msgExists      = "%s already exists with value '%s'"
	msgSet         = "%s set"
	msgRemoved     = "%s removed"
	msgNotExists   = "%s does not exist"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputJSONCompact writes a value as compact JSON.
func outputJSONCompact(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

// outputLine writes a formatted line.
func outputLine(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// StatusResponse is a generic response for mutating commands.
type StatusResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
