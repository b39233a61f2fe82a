// Package ambient resolves the context attached to new journal entries:
// the username preference, git facts for the working tree and the
// working directory itself.
package ambient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gorewood/hulo/internal/git"
	"github.com/gorewood/hulo/internal/journal"
)

// Sentinel values substituted when a git fact cannot be determined.
const (
	UnknownGitUser   = "Unknown Git User"
	UnknownGitBranch = "Unknown Git Branch"
	UnknownGitRepo   = "Unknown Git Repo"
)

// UsernameQuestion is asked when no username has been configured.
const UsernameQuestion = "Please create a user name to log against."

// ErrNoUsername is returned by EnsureUsername when no username is stored
// and there is no prompter to ask for one.
var ErrNoUsername = errors.New("no username configured; run 'hulo username <name>'")

// GitOps defines the git lookups needed to describe a working tree.
type GitOps interface {
	HasMarker(dir string) bool
	UserName(dir string) (string, error)
	CurrentBranch(dir string) (string, error)
	RepoName(dir string) (string, error)
}

// Preferences is the stored username preference.
type Preferences interface {
	Username() string
	SetUsername(name string) error
}

// Prompter asks the user a single-line question and waits for the answer.
type Prompter interface {
	Input(ctx context.Context, question string) (string, error)
}

// realGitOps implements GitOps using the git package.
type realGitOps struct{}

func (realGitOps) HasMarker(dir string) bool { return git.HasMarker(dir) }

func (realGitOps) UserName(dir string) (string, error) { return git.UserName(dir) }

func (realGitOps) CurrentBranch(dir string) (string, error) { return git.CurrentBranch(dir) }

func (realGitOps) RepoName(dir string) (string, error) { return git.RepoName(dir) }

// Resolver gathers ambient context for journal entries.
type Resolver struct {
	git      GitOps
	prefs    Preferences
	prompter Prompter
}

// NewResolver creates a Resolver.
// If ops is nil, real git commands are used.
// If prompter is nil, EnsureUsername fails instead of asking.
func NewResolver(ops GitOps, prefs Preferences, prompter Prompter) *Resolver {
	if ops == nil {
		ops = realGitOps{}
	}
	return &Resolver{git: ops, prefs: prefs, prompter: prompter}
}

// ResolveGit describes the git working tree rooted at dir.
// Returns nil when dir has no .git marker. Facts that cannot be
// determined are replaced by their sentinel values.
func (r *Resolver) ResolveGit(dir string) *journal.GitInfo {
	if !r.git.HasMarker(dir) {
		return nil
	}
	user, userErr := r.git.UserName(dir)
	branch, branchErr := r.git.CurrentBranch(dir)
	repo, repoErr := r.git.RepoName(dir)

	return &journal.GitInfo{
		User:   orSentinel(user, userErr, UnknownGitUser),
		Branch: orSentinel(branch, branchErr, UnknownGitBranch),
		Repo:   orSentinel(repo, repoErr, UnknownGitRepo),
	}
}

// EnsureUsername returns the configured username, asking for one if none is
// stored. created reports whether a new username was stored. An empty
// answer is not stored and yields an empty username.
func (r *Resolver) EnsureUsername(ctx context.Context) (name string, created bool, err error) {
	if current := r.prefs.Username(); current != "" {
		return current, false, nil
	}
	if r.prompter == nil {
		return "", false, ErrNoUsername
	}

	answer, err := r.prompter.Input(ctx, UsernameQuestion)
	if err != nil {
		return "", false, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false, nil
	}

	if err := r.prefs.SetUsername(answer); err != nil {
		return "", false, fmt.Errorf("saving username: %w", err)
	}
	return answer, true, nil
}

// Snapshot builds the entry context for dir with the given username.
func (r *Resolver) Snapshot(dir, username string) journal.Context {
	return journal.Context{
		Username: username,
		Git:      r.ResolveGit(dir),
		System:   journal.SystemInfo{Path: dir},
	}
}

// orSentinel returns value, or fallback when the lookup failed or came back empty.
func orSentinel(value string, err error, fallback string) string {
	value = strings.TrimSpace(value)
	if err != nil || value == "" {
		return fallback
	}
	return value
}
