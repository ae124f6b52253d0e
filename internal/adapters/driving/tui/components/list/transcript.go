// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// maxEntries caps the transcript length.
const maxEntries = 500

// Entry is one submitted line and its outcome.
type Entry struct {
	Line     string
	Value    domain.Value
	Err      error
	Duration time.Duration
}

// Transcript displays the lines run in the console and their results.
// It shows the newest entries that fit and scrolls back on request.
type Transcript struct {
	entries []Entry
	offset  int // entries hidden below the bottom edge
	styles  *styles.Styles
	width   int
	height  int
}

// NewTranscript creates a new transcript component.
func NewTranscript(s *styles.Styles) *Transcript {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Transcript{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the transcript.
func (t *Transcript) Init() tea.Cmd {
	return nil
}

// Update handles scroll messages.
func (t *Transcript) Update(msg tea.Msg) (*Transcript, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyPgUp:
			t.ScrollUp()
		case tea.KeyPgDown:
			t.ScrollDown()
		}
	}
	return t, nil
}

// View renders the visible entries.
func (t *Transcript) View() string {
	if len(t.entries) == 0 {
		return t.styles.Muted.Render("Type a command and press enter. Press tab to browse commands.")
	}

	// Each entry takes two lines.
	visible := t.height / 2
	if visible < 1 {
		visible = 1
	}

	end := len(t.entries) - t.offset
	start := end - visible
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, (end-start)*2+1)
	if t.offset > 0 {
		lines = append(lines, t.styles.Muted.Render(fmt.Sprintf("  ... %d newer", t.offset)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, t.renderEntry(&t.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (t *Transcript) renderEntry(e *Entry) string {
	line := t.styles.Prompt.Render("> ") + t.styles.Normal.Render(truncate(e.Line, t.width-2))

	var result string
	if e.Err != nil {
		result = t.styles.Error.Render("  !! " + truncate(e.Err.Error(), t.width-5))
	} else {
		kind := e.Value.Type()
		result = "  " + t.styles.Value(kind).Render(truncate(e.Value.String(), t.width-20)) +
			t.styles.Muted.Render(fmt.Sprintf("  %s  %s", kind, e.Duration.Round(time.Microsecond)))
	}
	return line + "\n" + result
}

func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Add appends an entry and scrolls to the bottom.
func (t *Transcript) Add(e Entry) {
	t.entries = append(t.entries, e)
	if len(t.entries) > maxEntries {
		t.entries = t.entries[len(t.entries)-maxEntries:]
	}
	t.offset = 0
}

// Entries returns the transcript entries, oldest first.
func (t *Transcript) Entries() []Entry {
	return t.entries
}

// Clear removes every entry.
func (t *Transcript) Clear() {
	t.entries = nil
	t.offset = 0
}

// ScrollUp moves the view back by one entry.
func (t *Transcript) ScrollUp() {
	if t.offset < len(t.entries)-1 {
		t.offset++
	}
}

// ScrollDown moves the view forward by one entry.
func (t *Transcript) ScrollDown() {
	if t.offset > 0 {
		t.offset--
	}
}

// Offset returns how many entries are hidden below the view.
func (t *Transcript) Offset() int {
	return t.offset
}

// SetDimensions sets the component dimensions.
func (t *Transcript) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Count returns the number of entries.
func (t *Transcript) Count() int {
	return len(t.entries)
}
