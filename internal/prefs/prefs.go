// Package prefs persists hulo user preferences in a small YAML file,
// independent of the journal data file.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk shape of the preference file.
type Settings struct {
	Username string `yaml:"username,omitempty"`
}

// File is a preference file loaded into memory.
// Changes are written back immediately.
type File struct {
	path     string
	settings Settings
}

// Load reads the preference file at path.
// A missing file yields empty settings; it is created on the first change.
func Load(path string) (*File, error) {
	f := &File{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &f.settings); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return f, nil
}

// Path returns the location of the preference file.
func (f *File) Path() string {
	return f.path
}

// Username returns the configured username, or "" when unset.
func (f *File) Username() string {
	return f.settings.Username
}

// SetUsername stores a new username and saves the file.
// The in-memory value is only updated once the write succeeds.
func (f *File) SetUsername(name string) error {
	next := f.settings
	next.Username = strings.TrimSpace(name)
	if err := save(f.path, next); err != nil {
		return err
	}
	f.settings = next
	return nil
}

func save(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// Live reads the preference file on every access, so a long-running
// process sees changes made by other hulo invocations.
type Live struct {
	path string
}

// NewLive returns preferences backed by the file at path.
func NewLive(path string) *Live {
	return &Live{path: path}
}

// Username returns the username currently on disk.
// An unreadable file counts as unset.
func (l *Live) Username() string {
	f, err := Load(l.path)
	if err != nil {
		return ""
	}
	return f.Username()
}

// SetUsername stores a new username, keeping any other settings on disk.
func (l *Live) SetUsername(name string) error {
	f, err := Load(l.path)
	if err != nil {
		return err
	}
	return f.SetUsername(name)
}
