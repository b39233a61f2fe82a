// Package git provides Git operations via exec for the hulo CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gorewood/hulo/internal/output"
)

// MarkerName is the file or directory that marks a git working tree root.
const MarkerName = ".git"

// RunIn executes a git command against the repository in dir.
func RunIn(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), append([]string{"-C", dir}, args...)...)
}

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// HasMarker reports whether dir itself contains a .git file or directory.
// Parent directories are not searched.
func HasMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MarkerName))
	return err == nil
}

// UserName returns the configured user.name for the repository in dir.
func UserName(dir string) (string, error) {
	name, err := RunIn(dir, "config", "user.name")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get git user name", err)
	}
	return name, nil
}

// CurrentBranch returns the name of the checked-out branch in dir.
// Works on a branch with no commits yet; fails when HEAD is detached.
func CurrentBranch(dir string) (string, error) {
	branch, err := RunIn(dir, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get current branch", err)
	}
	return branch, nil
}

// RepoName returns the repository name for dir: the last path segment of
// the origin remote URL, or the name of the top-level directory when there
// is no origin.
func RepoName(dir string) (string, error) {
	if url, err := RunIn(dir, "config", "--get", "remote.origin.url"); err == nil {
		if name := repoNameFromURL(url); name != "" {
			return name, nil
		}
	}

	root, err := RunIn(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get repository name", err)
	}
	return filepath.Base(root), nil
}

// repoNameFromURL extracts "demo" from URLs such as
// https://host/org/demo.git, git@host:org/demo.git and /srv/git/demo.
func repoNameFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if idx := strings.LastIndexAny(url, "/:\\"); idx >= 0 {
		url = url[idx+1:]
	}
	return strings.TrimSuffix(url, ".git")
}
