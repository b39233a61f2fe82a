package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/output"
)

const (
	logQuestion   = "Please create a log entry."
	loggedMessage = "Message logged."
)

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	return newLogCmdInternal(nil)
}

// newLogCmdInternal creates the log command with optional dependency injection.
func newLogCmdInternal(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "log [message...]",
		Short: "Make a log entry",
		Long: `Append a timestamped entry to the journal.

The entry records your hulo username, the git user, branch and repository
(when run at a repository root) and the working directory. Without a
message, $VISUAL or $EDITOR is opened, or a text area when neither is set.
The first entry asks for a username if none is configured.

Examples:
  hulo log "Fixed the flaky upload test"
  hulo log Fixed the flaky upload test     # words are joined with spaces
  hulo log                                 # write the entry in an editor
  echo "from a script" | hulo log          # piped input becomes the message`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, d, args)
		},
	}
}

// runLog executes the log command.
func runLog(cmd *cobra.Command, d *deps, args []string) error {
	printer := newPrinter(cmd)
	env := resolveDeps(cmd, d)

	store, err := env.openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	resolver, err := env.resolver()
	if err != nil {
		printer.Error(err)
		return err
	}

	// The username is settled before the message so that piped input
	// answers the questions in the order they are asked.
	username, created, err := resolver.EnsureUsername(cmd.Context())
	if err != nil {
		err = inputError(err)
		printer.Error(err)
		return err
	}
	switch {
	case printer.IsJSON():
	case created:
		printer.Out(usernameSetMessage(username))
	case username == "":
		printer.Warn("no username set, logging without one")
	}

	message := strings.Join(args, " ")
	if len(args) == 0 {
		message, err = env.prompter.Editor(cmd.Context(), logQuestion)
		if err != nil {
			err = inputError(err)
			printer.Error(err)
			return err
		}
	}

	dir, err := env.getwd()
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to get working directory", err)
		printer.Error(err)
		return err
	}

	entry, err := store.Log(resolver.Snapshot(dir, username), message, env.now())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(entry)
	}
	printer.Done(loggedMessage)
	return nil
}
