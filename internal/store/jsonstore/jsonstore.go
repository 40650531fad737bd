package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idilsaglam/users/internal/store"
)

// JSON export of a state snapshot. Human-readable, write-only: nothing is
// ever loaded back, every run starts from the seed state.

// DefaultFileName is used when Save is given a directory.
const DefaultFileName = "users.json"

// Encode writes s to w as indented JSON.
func Encode(w io.Writer, s store.State) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes s to path, replacing any existing file. When path is an
// existing directory the snapshot goes to DefaultFileName inside it.
func Save(path string, s store.State) (string, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}
