// Package main provides the entry point for the hulo CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X 'main.version=1.0.5' -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "1.0.4 alpha"
	commit  = "none"
	date    = "unknown"
)

// persistentFlag reads a persistent flag value from the command hierarchy.
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// isGlobal reads the --global persistent flag.
func isGlobal(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "global") == "true"
}

// newPrinter builds a printer for cmd honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	color := output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), color).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	cmd.SetArgs(liftNegativeCounts(cmd, os.Args[1:]))
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the hulo CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hulo",
		Short: "A logging tool for humans",
		Long: `Hulo - a personal journal for the command line.

Hulo appends timestamped notes to a local data file and tags each one with
where it was written:
  - your hulo username
  - the git user, branch and repository when run at a repository root
  - the working directory

Entries live in ./hulo.db by default, or in the hulo config directory
with --global. Set HULO_DB to use a specific file.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'hulo --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	addPersistentFlags(cmd)

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addPersistentFlags adds the flags every subcommand inherits.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolP("global", "g", false, "Use the per-user data file instead of ./hulo.db")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "tracking", Title: "Tracking Commands (not yet implemented):"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newLogCmd(), "journal")
	addGroupedCommand(cmd, newReadCmd(), "journal")

	addGroupedCommand(cmd, newTaskCmd(), "tracking")
	addGroupedCommand(cmd, newCountCmd(), "tracking")
	addGroupedCommand(cmd, newHowManyCmd(), "tracking")
	addGroupedCommand(cmd, newTrackCmd(), "tracking")

	addGroupedCommand(cmd, newUsernameCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
