package prompt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// external collects a multi-line answer by opening the configured editor on
// a temporary file. The question is written to the terminal first.
func (t *Terminal) external(ctx context.Context, question string) (string, error) {
	args := strings.Fields(t.editor)
	if len(args) == 0 {
		return "", fmt.Errorf("no editor configured")
	}

	if _, err := fmt.Fprintf(t.out, "? %s\n", question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	tmp, err := os.CreateTemp("", "hulo-entry-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()
	defer func() { _ = os.Remove(path) }()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = t.in
	cmd.Stdout = t.out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %s: %w", args[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
