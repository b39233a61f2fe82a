package main

import (
	"github.com/spf13/cobra"
)

// newStubCmd creates a placeholder command that only reports it is not
// implemented.
func newStubCmd(use, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newPrinter(cmd).Problem(cmd.Name() + " is not currently implemented.")
			return nil
		},
	}
}

// newCountCmd creates the count command.
func newCountCmd() *cobra.Command {
	return newStubCmd("count <item> [number]", "Count an item", cobra.RangeArgs(1, 2))
}

// newHowManyCmd creates the howmany command.
func newHowManyCmd() *cobra.Command {
	return newStubCmd("howmany <item>", "Show how many of an item were counted", cobra.ExactArgs(1))
}

// newTrackCmd creates the track command.
func newTrackCmd() *cobra.Command {
	return newStubCmd("track <item> <number>", "Track a number against an item", cobra.ExactArgs(2))
}
