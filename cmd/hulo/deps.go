package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/ambient"
	"github.com/gorewood/hulo/internal/config"
	"github.com/gorewood/hulo/internal/journal"
	"github.com/gorewood/hulo/internal/output"
	"github.com/gorewood/hulo/internal/prefs"
	"github.com/gorewood/hulo/internal/prompt"
)

// Prompter asks the user for single-line and multi-line answers.
type Prompter interface {
	Input(ctx context.Context, question string) (string, error)
	Editor(ctx context.Context, question string) (string, error)
}

// deps holds the collaborators a command runs against.
// Tests inject fakes; nil fields are filled with real implementations.
type deps struct {
	store    *journal.FileStore
	prefs    ambient.Preferences
	prompter Prompter
	git      ambient.GitOps
	getwd    func() (string, error)
	now      func() time.Time
}

// resolveDeps copies d and fills in the cheap defaults.
// The store and preferences are opened on first use.
func resolveDeps(cmd *cobra.Command, d *deps) *deps {
	r := &deps{}
	if d != nil {
		*r = *d
	}
	if r.prompter == nil {
		r.prompter = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	if r.getwd == nil {
		r.getwd = os.Getwd
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// openStore returns the store, opening the data file selected by --global
// and $HULO_DB if none was injected.
func (d *deps) openStore(cmd *cobra.Command) (*journal.FileStore, error) {
	if d.store != nil {
		return d.store, nil
	}
	store, err := journal.Open(config.DataPath(isGlobal(cmd)))
	if err != nil {
		return nil, err
	}
	d.store = store
	return store, nil
}

// preferences returns the user settings, loading the settings file if none
// were injected.
func (d *deps) preferences() (ambient.Preferences, error) {
	if d.prefs != nil {
		return d.prefs, nil
	}
	file, err := prefs.Load(config.SettingsPath())
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to load settings", err)
	}
	d.prefs = file
	return file, nil
}

// resolver builds the ambient context resolver over the loaded preferences.
func (d *deps) resolver() (*ambient.Resolver, error) {
	settings, err := d.preferences()
	if err != nil {
		return nil, err
	}
	return ambient.NewResolver(d.git, settings, d.prompter), nil
}

// inputError classifies an error from an interactive prompt.
func inputError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if errors.Is(err, prompt.ErrAborted) {
		return output.NewUserErrorWithCause("input aborted, nothing was saved", err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}
