package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/output"
)

// usernameSetMessage is printed whenever a new username is stored.
func usernameSetMessage(name string) string {
	return "Your username is set to " + name
}

// newUsernameCmd creates the username command.
func newUsernameCmd() *cobra.Command {
	return newUsernameCmdInternal(nil)
}

// newUsernameCmdInternal creates the username command with optional dependency injection.
func newUsernameCmdInternal(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "username [newUsername]",
		Short: "Show or set the username entries are logged against",
		Long: `Show or set the username recorded on new entries.

With an argument the username is replaced. Without one the current username
is shown, asking for one first if none is configured.

Examples:
  hulo username          # show the current username
  hulo username alice    # log future entries as alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsername(cmd, d, args)
		},
	}
}

// runUsername executes the username command.
func runUsername(cmd *cobra.Command, d *deps, args []string) error {
	printer := newPrinter(cmd)
	env := resolveDeps(cmd, d)

	if len(args) > 0 {
		return setUsername(printer, env, args[0])
	}

	resolver, err := env.resolver()
	if err != nil {
		printer.Error(err)
		return err
	}
	name, created, err := resolver.EnsureUsername(cmd.Context())
	if err != nil {
		err = inputError(err)
		printer.Error(err)
		return err
	}

	switch {
	case printer.IsJSON():
		return printer.WriteJSON(map[string]any{"username": name, "created": created})
	case name == "":
		printer.Problem("No username set.")
	case created:
		printer.Out(usernameSetMessage(name))
	default:
		printer.Out("Your username is " + name)
	}
	return nil
}

// setUsername stores name as the new username.
func setUsername(printer *output.Printer, env *deps, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		err := output.NewUserError("username cannot be empty")
		printer.Error(err)
		return err
	}

	settings, err := env.preferences()
	if err != nil {
		printer.Error(err)
		return err
	}
	if err := settings.SetUsername(name); err != nil {
		err = output.NewSystemErrorWithCause("failed to save username", err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"username": name, "created": true})
	}
	printer.Out(usernameSetMessage(name))
	return nil
}
