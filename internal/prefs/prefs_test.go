package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.Username() != "" {
		t.Errorf("Username() = %q, want empty", f.Username())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load should not create the file")
	}
}

func TestSetUsername_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := f.SetUsername("  alice \n"); err != nil {
		t.Fatalf("SetUsername() error = %v", err)
	}
	if f.Username() != "alice" {
		t.Errorf("Username() = %q, want %q", f.Username(), "alice")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading settings: %v", err)
	}
	if !strings.Contains(string(data), "username: alice") {
		t.Errorf("settings file = %q, want username key", data)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Username() != "alice" {
		t.Errorf("reloaded Username() = %q, want %q", reloaded.Username(), "alice")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("username: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on invalid YAML")
	}
}

func TestSetUsername_WriteFailureKeepsOldValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file, so the write must fail.
	f := &File{path: filepath.Join(blocker, "settings.yaml"), settings: Settings{Username: "bob"}}
	if err := f.SetUsername("alice"); err == nil {
		t.Fatal("SetUsername() should fail when the directory cannot be created")
	}
	if f.Username() != "bob" {
		t.Errorf("Username() = %q, want unchanged %q", f.Username(), "bob")
	}
}

func TestLive_SeesChangesFromOtherWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	live := NewLive(path)

	if got := live.Username(); got != "" {
		t.Fatalf("Username() before any write = %q, want empty", got)
	}

	other, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := other.SetUsername("alice"); err != nil {
		t.Fatal(err)
	}
	if got := live.Username(); got != "alice" {
		t.Errorf("Username() after external set = %q, want %q", got, "alice")
	}

	if err := live.SetUsername("bob"); err != nil {
		t.Fatalf("SetUsername() error = %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Username() != "bob" {
		t.Errorf("file username = %q, want %q", reloaded.Username(), "bob")
	}
}

func TestLive_UnreadableFileIsUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("username: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	live := NewLive(path)
	if got := live.Username(); got != "" {
		t.Errorf("Username() = %q, want empty", got)
	}
	if err := live.SetUsername("alice"); err == nil {
		t.Error("SetUsername() over a corrupt file should fail")
	}
}
