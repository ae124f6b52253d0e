// Package commands provides the command picker view of the TUI.
package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// View lists registered commands. Selecting one hands its name back to
// the console prompt.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	service  driving.CommandService
	commands []domain.CommandInfo
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new commands view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.CommandService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		width:   80,
		height:  24,
	}
}

// Init loads the command list.
func (v *View) Init() tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.CommandsLoaded{}
		}
		return messages.CommandsLoaded{Commands: service.List()}
	}
}

// Update handles messages for the commands view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CommandsLoaded:
		v.commands = msg.Commands
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.commands)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			info := v.SelectedCommand()
			if info == nil {
				return v, nil
			}
			line := info.Name
			if info.Arity > 0 {
				line += " "
			}
			return v, func() tea.Msg { return messages.LineChosen{Line: line} }

		case "esc", "q":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewConsole} }
		}
	}

	return v, nil
}

// View renders the command list and the selected command's details.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Commands (%d)", len(v.commands))))
	b.WriteString("\n\n")

	if len(v.commands) == 0 {
		b.WriteString(v.styles.Muted.Render("No commands registered."))
		b.WriteString("\n")
		return b.String()
	}

	// Leave room for the header, details and footer.
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.commands))

	for i := start; i < end; i++ {
		info := v.commands[i]
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + info.Name))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(info.Name))
		}
		if info.Module != "" {
			b.WriteString(" " + v.styles.Muted.Render("("+info.Module+")"))
		}
		b.WriteString("\n")
	}

	if info := v.SelectedCommand(); info != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(info.Name))
		b.WriteString(" " + formatParams(info.Params) + "\n")
		if info.Description != "" {
			b.WriteString(v.styles.Muted.Render(info.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Use  [Esc] Back"))
	return b.String()
}

// formatParams renders a parameter layout like "[0]int64 [1]string".
func formatParams(params []domain.Param) string {
	if len(params) == 0 {
		return "(no arguments)"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("[%d]%s", p.Index, p.Type)
	}
	return strings.Join(parts, " ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedCommand returns the selected command, or nil if the list is empty.
func (v *View) SelectedCommand() *domain.CommandInfo {
	if v.selected < 0 || v.selected >= len(v.commands) {
		return nil
	}
	return &v.commands[v.selected]
}
