package clipboard

import (
	"errors"
	"testing"
)

func TestIsAvailable(t *testing.T) {
	// Availability depends on the system; just make sure it agrees with
	// getClipboardCommand.
	_, err := getClipboardCommand()
	if IsAvailable() != (err == nil) {
		t.Errorf("IsAvailable() = %v, getClipboardCommand() error = %v", IsAvailable(), err)
	}
}

func TestGetClipboardCommand(t *testing.T) {
	cmd, err := getClipboardCommand()
	if err != nil {
		if !errors.Is(err, ErrClipboardUnavailable) {
			t.Errorf("getClipboardCommand() error = %v, want ErrClipboardUnavailable", err)
		}
		if cmd != nil {
			t.Error("getClipboardCommand returned both command and error")
		}
		return
	}
	if cmd == nil {
		t.Error("getClipboardCommand returned nil command with no error")
	}
}

func TestCopy_Unavailable(t *testing.T) {
	if IsAvailable() {
		t.Skip("clipboard available on this system")
	}
	if err := Copy("kubectl get pods"); !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("Copy() error = %v, want ErrClipboardUnavailable", err)
	}
}
