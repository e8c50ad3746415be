// Package storage handles reading and writing the snippet store file.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadText reads the whole store file as text.
//
// A missing file is created empty (along with its parent directory) and
// reads as "". Other errors are returned alongside "".
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading store file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating store directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating store file: %w", err)
	}
	f.Close()

	return "", nil
}

// WriteText replaces the store file's contents with text.
func WriteText(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating store file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	return nil
}

// FileHash computes a SHA256 hash of a file's contents.
// A missing file hashes like an empty one.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
