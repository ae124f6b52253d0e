package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used when writing to a terminal.
var (
	colourPrimary   = lipgloss.Color("#7C3AED") // Purple
	colourSecondary = lipgloss.Color("#06B6D4") // Cyan
	colourMuted     = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess   = lipgloss.Color("#A6E3A1") // Green
	colourError     = lipgloss.Color("#F38BA8") // Red
)

// styles holds the output styles of one command run.
type styles struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// stylesFor returns coloured styles when w is a terminal and plain ones
// otherwise, so piped output stays free of escape codes.
func stylesFor(w io.Writer) *styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return &styles{Title: plain, Name: plain, Muted: plain, Success: plain, Error: plain}
	}

	return &styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colourPrimary),
		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(colourSecondary),
		Muted: lipgloss.NewStyle().
			Foreground(colourMuted),
		Success: lipgloss.NewStyle().
			Foreground(colourSuccess),
		Error: lipgloss.NewStyle().
			Foreground(colourError),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
