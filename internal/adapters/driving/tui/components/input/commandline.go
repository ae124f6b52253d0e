// Package input provides the command line component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
)

// maxRecall caps the number of remembered lines.
const maxRecall = 100

// CommandLine wraps a bubbles textinput with a prompt and line recall.
type CommandLine struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	// recall holds submitted lines, oldest first. cursor indexes into it
	// while browsing and equals len(recall) otherwise.
	recall []string
	cursor int
	draft  string
}

// NewCommandLine creates a new command line component.
func NewCommandLine(s *styles.Styles) *CommandLine {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "command args..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	return &CommandLine{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the command line.
func (c *CommandLine) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (c *CommandLine) Update(msg tea.Msg) (*CommandLine, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the command line.
func (c *CommandLine) View() string {
	prompt := c.styles.Prompt.Render("dsctl> ")
	line := c.styles.InputField.Render(c.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, prompt, line)
}

// Value returns the current input value.
func (c *CommandLine) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value and moves the cursor to its end.
func (c *CommandLine) SetValue(value string) {
	c.textinput.SetValue(value)
	c.textinput.CursorEnd()
}

// Remember appends a submitted line to the recall list and ends browsing.
// Blank lines and repeats of the last line are skipped.
func (c *CommandLine) Remember(line string) {
	if line != "" && (len(c.recall) == 0 || c.recall[len(c.recall)-1] != line) {
		c.recall = append(c.recall, line)
		if len(c.recall) > maxRecall {
			c.recall = c.recall[len(c.recall)-maxRecall:]
		}
	}
	c.cursor = len(c.recall)
	c.draft = ""
}

// Previous replaces the input with the previous remembered line.
func (c *CommandLine) Previous() {
	if c.cursor == 0 {
		return
	}
	if c.cursor == len(c.recall) {
		c.draft = c.Value()
	}
	c.cursor--
	c.SetValue(c.recall[c.cursor])
}

// Next replaces the input with the next remembered line, or the line
// being typed before browsing started.
func (c *CommandLine) Next() {
	if c.cursor >= len(c.recall) {
		return
	}
	c.cursor++
	if c.cursor == len(c.recall) {
		c.SetValue(c.draft)
		return
	}
	c.SetValue(c.recall[c.cursor])
}

// Recall returns the remembered lines, oldest first.
func (c *CommandLine) Recall() []string {
	return append([]string(nil), c.recall...)
}

// Focus sets focus on the input.
func (c *CommandLine) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *CommandLine) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *CommandLine) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the width of the input.
func (c *CommandLine) SetWidth(width int) {
	c.width = width
	// Account for prompt and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	c.textinput.Width = inputWidth
}

// Width returns the current width.
func (c *CommandLine) Width() int {
	return c.width
}

// Reset clears the input.
func (c *CommandLine) Reset() {
	c.textinput.Reset()
}
