package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/ambient"
	"github.com/gorewood/hulo/internal/config"
	"github.com/gorewood/hulo/internal/prefs"
)

// TestNewServeCmd verifies the serve command wires up correctly.
func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.RunE == nil {
		t.Error("RunE is nil")
	}
}

func TestServeBackend(t *testing.T) {
	d, _, _ := newTestDeps(t, "alice")

	backend, err := serveBackend(&cobra.Command{}, d)
	if err != nil {
		t.Fatalf("serveBackend() error = %v", err)
	}
	if backend.Store != d.store {
		t.Error("backend should use the injected store")
	}
	if backend.Resolver == nil || backend.Getwd == nil || backend.Now == nil {
		t.Errorf("backend not fully wired: %+v", backend)
	}
	if !backend.Now().Equal(testNow) {
		t.Errorf("Now() = %v, want injected clock", backend.Now())
	}
}

func TestServeBackend_UsernameSetWhileRunning(t *testing.T) {
	t.Setenv("HULO_CONFIG_HOME", t.TempDir())
	d, _, _ := newTestDeps(t, "")
	d.prefs = nil

	backend, err := serveBackend(&cobra.Command{}, d)
	if err != nil {
		t.Fatalf("serveBackend() error = %v", err)
	}
	if _, _, err := backend.Resolver.EnsureUsername(context.Background()); !errors.Is(err, ambient.ErrNoUsername) {
		t.Fatalf("EnsureUsername() before set error = %v, want ErrNoUsername", err)
	}

	// A separate "hulo username alice" while the server keeps running.
	file, err := prefs.Load(config.SettingsPath())
	if err != nil {
		t.Fatal(err)
	}
	if err := file.SetUsername("alice"); err != nil {
		t.Fatal(err)
	}

	name, created, err := backend.Resolver.EnsureUsername(context.Background())
	if err != nil {
		t.Fatalf("EnsureUsername() error = %v", err)
	}
	if name != "alice" || created {
		t.Errorf("EnsureUsername() = (%q, %v), want (alice, false)", name, created)
	}
}
