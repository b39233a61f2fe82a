package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// run drives a bubbletea model on the terminal's streams until it quits.
func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// inputModel is a single-line question.
type inputModel struct {
	question string
	input    textinput.Model
	done     bool
	aborted  bool
}

func newInputModel(question string) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()
	return inputModel{question: question, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	header := questionStyle.Render("? " + m.question)
	switch {
	case m.done:
		return header + " " + answerStyle.Render(m.input.Value()) + "\n"
	case m.aborted:
		return header + "\n"
	default:
		return header + "\n" + m.input.View() + "\n"
	}
}

// editorModel is a multi-line question answered in a text area.
// Ctrl+D submits; Esc or Ctrl+C cancels.
type editorModel struct {
	question string
	area     textarea.Model
	done     bool
	aborted  bool
}

func newEditorModel(question string) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Write your entry"
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.Focus()
	return editorModel{question: question, area: ta}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.area.SetWidth(msg.Width - 2)
		}
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	header := questionStyle.Render("? " + m.question)
	if m.done || m.aborted {
		return header + "\n"
	}
	return header + "\n" + m.area.View() + "\n" + hintStyle.Render("ctrl+d save  |  esc cancel") + "\n"
}
