// Package clipboard copies snippet values to the system clipboard via shell commands.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// candidates lists clipboard writers per OS, in preference order.
var candidates = map[string][][]string{
	"darwin": {{"pbcopy"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
	"windows": {{"clip"}},
}

// getClipboardCommand returns a command that reads stdin into the clipboard.
func getClipboardCommand() (*exec.Cmd, error) {
	for _, argv := range candidates[runtime.GOOS] {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return exec.Command(argv[0], argv[1:]...), nil
		}
	}
	return nil, ErrClipboardUnavailable
}

// IsAvailable checks if clipboard functionality is available on this system.
func IsAvailable() bool {
	_, err := getClipboardCommand()
	return err == nil
}

// Copy copies the given text to the system clipboard.
// Returns ErrClipboardUnavailable if clipboard access is not available.
func Copy(text string) error {
	cmd, err := getClipboardCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
