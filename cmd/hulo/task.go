package main

import (
	"github.com/spf13/cobra"
)

// newTaskCmd creates the task command.
func newTaskCmd() *cobra.Command {
	return newTaskCmdInternal(nil)
}

// newTaskCmdInternal creates the task command with optional dependency injection.
// Task tracking is not implemented; every mode prints a notice.
func newTaskCmdInternal(d *deps) *cobra.Command {
	var start, end bool

	cmd := &cobra.Command{
		Use:   "task [taskName]",
		Short: "Track a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runTask(cmd, d, name, start, end)
		},
	}

	cmd.Flags().BoolVarP(&start, "start", "s", false, "End current task and start a new task")
	cmd.Flags().BoolVarP(&end, "end", "e", false, "End a task")

	return cmd
}

// runTask prints the notice for each requested mode. With neither or both
// flags the read mode runs too.
func runTask(cmd *cobra.Command, d *deps, name string, start, end bool) error {
	printer := newPrinter(cmd)

	if end {
		printer.Problem("End task not implemented yet.")
	}
	if start {
		printer.Problem("Start task not implemented yet so can't start " + name + ".")
	}
	if start == end {
		printer.Problem("Read task not implemented.")

		store, err := resolveDeps(cmd, d).openStore(cmd)
		if err != nil {
			printer.Error(err)
			return err
		}
		tracked, err := store.Tracked()
		if err != nil {
			printer.Error(err)
			return err
		}
		if tracked == 0 {
			printer.Problem("No tasks have been recorded yet.")
		}
	}
	return nil
}
