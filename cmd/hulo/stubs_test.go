package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestStubCommands(t *testing.T) {
	tests := []struct {
		name    string
		newCmd  func() *cobra.Command
		args    []string
		want    string
		wantErr bool
	}{
		{name: "count", newCmd: newCountCmd, args: []string{"coffee"}, want: "hulo: count is not currently implemented.\n"},
		{name: "count with number", newCmd: newCountCmd, args: []string{"coffee", "2"}, want: "hulo: count is not currently implemented.\n"},
		{name: "howmany", newCmd: newHowManyCmd, args: []string{"coffee"}, want: "hulo: howmany is not currently implemented.\n"},
		{name: "track", newCmd: newTrackCmd, args: []string{"weight", "80"}, want: "hulo: track is not currently implemented.\n"},
		{name: "count without item", newCmd: newCountCmd, wantErr: true},
		{name: "track without number", newCmd: newTrackCmd, args: []string{"weight"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(tt.newCmd(), tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected argument error, got output %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}
