// Package prompt asks the user for input on the terminal.
//
// On an interactive terminal questions are answered through bubbletea
// widgets (a text input for single lines, a text area for messages) or the
// user's $VISUAL/$EDITOR. When stdin is not a terminal the answers are read
// as plain lines, which keeps piping and tests simple.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels a prompt or input ends
// before an answer is given.
var ErrAborted = errors.New("prompt aborted")

// Terminal prompts on a pair of input/output streams.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	lines       *bufio.Reader
	editor      string
	interactive bool
}

// New creates a Terminal reading from in and writing questions to out.
// Interactive widgets are used only when in is a terminal.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:          in,
		out:         out,
		lines:       bufio.NewReader(in),
		editor:      EditorFromEnv(),
		interactive: isTerminal(in),
	}
}

// EditorFromEnv returns $VISUAL, falling back to $EDITOR.
func EditorFromEnv() string {
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	return strings.TrimSpace(os.Getenv("EDITOR"))
}

// Input asks a single-line question and returns the answer without the
// trailing newline.
func (t *Terminal) Input(ctx context.Context, question string) (string, error) {
	if !t.interactive {
		return t.readLine(question)
	}

	final, err := t.run(ctx, newInputModel(question))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

// Editor asks for a multi-line answer. It opens the configured editor when
// there is one, otherwise a text area; without a terminal it reads the rest
// of the input.
func (t *Terminal) Editor(ctx context.Context, question string) (string, error) {
	if !t.interactive {
		return t.readAll(question)
	}
	if t.editor != "" {
		return t.external(ctx, question)
	}

	final, err := t.run(ctx, newEditorModel(question))
	if err != nil {
		return "", err
	}
	m, ok := final.(editorModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return strings.TrimRight(m.area.Value(), "\n"), nil
}

// readLine prints question and reads one line.
func (t *Terminal) readLine(question string) (string, error) {
	if _, err := fmt.Fprintf(t.out, "? %s ", question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := t.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrAborted
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readAll prints question and reads until end of input.
func (t *Terminal) readAll(question string) (string, error) {
	if _, err := fmt.Fprintf(t.out, "? %s\n", question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	data, err := io.ReadAll(t.lines)
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// isTerminal reports whether r is an *os.File attached to a terminal.
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
