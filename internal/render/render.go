// Package render turns journal entries into terminal text.
// Rendering is pure: it depends only on the entry and the chosen style.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/hulo/internal/journal"
)

// CompactLayout is the timestamp layout used for one-line entries (D-MM-YY hh:mm).
const CompactLayout = "2-01-06 03:04"

// wroteMarker separates the author from the message.
const wroteMarker = "wrote:"

// Styles holds the lipgloss styles applied to rendered entries.
type Styles struct {
	Stamp lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// NewStyles returns the entry styles, or unstyled output when color is false.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{
			Stamp: lipgloss.NewStyle(),
			Label: lipgloss.NewStyle(),
			Value: lipgloss.NewStyle(),
		}
	}
	return Styles{
		Stamp: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // Blue
	}
}

// Formatter renders entries in compact or verbose form.
type Formatter struct {
	styles Styles
}

// NewFormatter creates a Formatter. Colors are used only when color is true.
func NewFormatter(color bool) *Formatter {
	return &Formatter{styles: NewStyles(color)}
}

// Render returns the lines for entry in the requested mode.
func (f *Formatter) Render(entry *journal.Entry, verbose bool) []string {
	if verbose {
		return f.Verbose(entry)
	}
	return []string{f.Compact(entry)}
}

// Compact renders entry on a single line:
//
//	15-01-26 10:30 alice wrote: Fixed the bug
func (f *Formatter) Compact(entry *journal.Entry) string {
	parts := []string{f.styles.Stamp.Render(CompactTime(entry.Timestamp))}
	if entry.Username != "" {
		parts = append(parts, f.styles.Value.Render(entry.Username))
	}
	parts = append(parts, f.styles.Label.Render(wroteMarker))
	if entry.Message != "" {
		parts = append(parts, entry.Message)
	}
	return strings.Join(parts, " ")
}

// Verbose renders entry across several lines:
//
//	Thursday, January 15th 2026, 10:30:00 am
//	Repo: demo Branch: main
//	Path: /home/alice/demo
//	alice (Alice Example) wrote:
//	Fixed the bug
//
// The repo/branch and path lines are skipped when they would be empty.
func (f *Formatter) Verbose(entry *journal.Entry) []string {
	lines := []string{f.styles.Stamp.Render(LongTime(entry.Timestamp))}

	if line := f.gitLine(entry.Git); line != "" {
		lines = append(lines, line)
	}
	if entry.System.Path != "" {
		lines = append(lines, f.field("Path", entry.System.Path))
	}

	return append(lines, f.authorLine(entry), entry.Message)
}

// gitLine lists whichever of repo and branch are known.
func (f *Formatter) gitLine(info *journal.GitInfo) string {
	if info == nil {
		return ""
	}
	var parts []string
	if info.Repo != "" {
		parts = append(parts, f.field("Repo", info.Repo))
	}
	if info.Branch != "" {
		parts = append(parts, f.field("Branch", info.Branch))
	}
	return strings.Join(parts, " ")
}

// authorLine renders "<username> (<git user>) wrote:", omitting unknown parts.
func (f *Formatter) authorLine(entry *journal.Entry) string {
	var parts []string
	if entry.Username != "" {
		parts = append(parts, f.styles.Value.Render(entry.Username))
	}
	if entry.Git != nil && entry.Git.User != "" {
		parts = append(parts, f.styles.Label.Render("(")+f.styles.Value.Render(entry.Git.User)+f.styles.Label.Render(")"))
	}
	parts = append(parts, f.styles.Label.Render(wroteMarker))
	return strings.Join(parts, " ")
}

func (f *Formatter) field(label, value string) string {
	return f.styles.Label.Render(label+":") + " " + f.styles.Value.Render(value)
}

// CompactTime formats t as D-MM-YY hh:mm with a 12-hour clock.
func CompactTime(t time.Time) string {
	return t.Format(CompactLayout)
}

// LongTime formats t as "Thursday, January 15th 2026, 10:30:00 am".
func LongTime(t time.Time) string {
	return t.Format("Monday, January ") +
		Ordinal(t.Day()) +
		t.Format(" 2006, 3:04:05 pm")
}

// Ordinal returns n with its English ordinal suffix (1st, 2nd, 3rd, 11th).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
