package main

import (
	"regexp"

	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/journal"
	"github.com/gorewood/hulo/internal/render"
)

// negativeCount matches a dash-prefixed number such as -1.
var negativeCount = regexp.MustCompile(`^-[0-9]+$`)

// readFlags holds the flags for the read command.
type readFlags struct {
	verbose bool
	all     bool
}

// newReadCmd creates the read command.
func newReadCmd() *cobra.Command {
	return newReadCmdInternal(nil)
}

// newReadCmdInternal creates the read command with optional dependency injection.
func newReadCmdInternal(d *deps) *cobra.Command {
	var flags readFlags

	cmd := &cobra.Command{
		Use:     "read [count]",
		Aliases: []string{"last"},
		Short:   "Output the last log entries",
		Long: `Output the most recent journal entries, oldest first.

count defaults to 1. A count that is not a positive number is treated as 1.
A negative count such as -1 is taken as the count, not as a flag; when
calling read through another tool, "hulo read -- -1" is equivalent.

Examples:
  hulo read            # the last entry
  hulo last 5          # the last five entries
  hulo read -a -v      # every entry with its git and path details
  hulo read 3 --json   # the last three entries as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, d, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Read all entries")

	return cmd
}

// runRead executes the read command.
func runRead(cmd *cobra.Command, d *deps, args []string, flags readFlags) error {
	printer := newPrinter(cmd)
	env := resolveDeps(cmd, d)

	store, err := env.openStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := selectEntries(store, args, flags.all)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(entries)
	}

	formatter := render.NewFormatter(printer.IsTTY())
	for _, entry := range entries {
		for _, line := range formatter.Render(entry, flags.verbose) {
			printer.Println(line)
		}
	}
	return nil
}

// selectEntries returns every entry for --all, otherwise the last count.
func selectEntries(store *journal.FileStore, args []string, all bool) ([]*journal.Entry, error) {
	if all {
		return store.All()
	}
	count := journal.DefaultCount
	if len(args) > 0 {
		count = journal.ParseCount(args[0])
	}
	return store.Last(count)
}

// liftNegativeCounts moves negative counts given to read behind a "--" so
// pflag does not reject them as unknown shorthand flags. Other commands and
// argument lists that already carry "--" are returned unchanged.
func liftNegativeCounts(root *cobra.Command, args []string) []string {
	target, _, err := root.Find(args)
	if err != nil || target.Name() != "read" {
		return args
	}

	var kept, counts []string
	for _, arg := range args {
		switch {
		case arg == "--":
			return args
		case negativeCount.MatchString(arg):
			counts = append(counts, arg)
		default:
			kept = append(kept, arg)
		}
	}
	if len(counts) == 0 {
		return args
	}
	lifted := append(kept, "--")
	return append(lifted, counts...)
}
