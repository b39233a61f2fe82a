package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRootCommand_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			cmd := newRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{flag})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			output := buf.String()
			if !strings.Contains(output, "1.0.4 alpha") {
				t.Errorf("%s output should contain version: %q", flag, output)
			}
			if !strings.Contains(output, "hulo") {
				t.Errorf("%s output should contain 'hulo': %q", flag, output)
			}
		})
	}
}

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	version, commit, date = "1.2.3", "none", "unknown"
	if got := buildVersion(); got != "1.2.3" {
		t.Errorf("buildVersion() = %q, want 1.2.3", got)
	}

	commit, date = "abcdef1234567", "2024-01-01"
	if got := buildVersion(); got != "1.2.3 (abcdef1, 2024-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	expectations := []string{
		"hulo",
		"Usage:",
		"--json",
		"--global",
		"--color",
		"log",
		"read",
		"username",
		"task",
	}
	for _, expected := range expectations {
		if !strings.Contains(output, expected) {
			t.Errorf("--help output should contain %q: %q", expected, output)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--json"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", buf.String())
	}
	if _, ok := result["code"]; !ok {
		t.Errorf("JSON output should contain 'code' field: %s", buf.String())
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"log", "read", "last", "task", "count", "howmany", "track", "username", "serve"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found == cmd {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"json", "global", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
	if flag := cmd.PersistentFlags().ShorthandLookup("g"); flag == nil || flag.Name != "global" {
		t.Error("-g should be shorthand for --global")
	}
}

func TestNewPrinter_ColorFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: []string{"read"}, want: false},
		{args: []string{"read", "--color", "always"}, want: true},
		{args: []string{"read", "--color", "never"}, want: false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			root := newRootCmd()
			root.SetOut(new(bytes.Buffer))
			read, _, err := root.Find(tt.args[:1])
			if err != nil {
				t.Fatal(err)
			}
			if err := root.ParseFlags(tt.args[1:]); err != nil {
				t.Fatal(err)
			}
			if got := newPrinter(read).IsTTY(); got != tt.want {
				t.Errorf("styled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlobalFlag_SelectsConfigDir(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("HULO_CONFIG_HOME", configDir)
	t.Setenv("HULO_DB", "")

	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"read", "--global", "--json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, buf.String())
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want empty JSON array", buf.String())
	}
}
