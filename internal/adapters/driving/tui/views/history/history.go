// Package history provides the invocation history view of the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// limit is the number of invocations loaded.
const limit = 100

// View lists recorded invocations. Selecting one puts its command line
// back on the console prompt.
type View struct {
	styles      *styles.Styles
	service     driving.HistoryService
	ctx         context.Context
	invocations []domain.Invocation
	selected    int
	err         error
	width       int
	height      int
	ready       bool
}

// NewView creates a new history view. service may be nil when history is
// disabled.
func NewView(s *styles.Styles, service driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used to load history.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads recent invocations.
func (v *View) Init() tea.Cmd {
	service, ctx := v.service, v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.HistoryLoaded{}
		}
		invocations, err := service.Recent(ctx, limit)
		return messages.HistoryLoaded{Invocations: invocations, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.invocations = msg.Invocations
		v.err = msg.Err
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
			if v.selected < len(v.invocations)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			inv := v.SelectedInvocation()
			if inv == nil {
				return v, nil
			}
			line := commandLine(inv)
			return v, func() tea.Msg { return messages.LineChosen{Line: line} }

		case "esc", "q":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewConsole} }
		}
	}

	return v, nil
}

// commandLine rebuilds a console line from a recorded invocation,
// quoting arguments that contain spaces.
func commandLine(inv *domain.Invocation) string {
	words := make([]string, 0, len(inv.Args)+1)
	words = append(words, inv.Command)
	for _, arg := range inv.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'\\") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		words = append(words, arg)
	}
	return strings.Join(words, " ")
}

// View renders the history list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.service == nil:
		b.WriteString(v.styles.Muted.Render("History is disabled (history.enabled = false)."))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		return b.String()
	case len(v.invocations) == 0:
		b.WriteString(v.styles.Muted.Render("No invocations recorded."))
		b.WriteString("\n")
		return b.String()
	}

	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.invocations))

	for i := start; i < end; i++ {
		inv := &v.invocations[i]
		line := fmt.Sprintf("%s  %s", inv.StartedAt.Local().Format("15:04:05"), commandLine(inv))

		var outcome string
		if inv.Failed() {
			outcome = v.styles.Error.Render(" !! " + inv.Error)
		} else {
			outcome = v.styles.Muted.Render(" => ") + v.styles.Value(inv.ResultType).Render(inv.Result)
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> "+line) + outcome)
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line) + outcome)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Reuse  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedInvocation returns the selected invocation, or nil if none.
func (v *View) SelectedInvocation() *domain.Invocation {
	if v.selected < 0 || v.selected >= len(v.invocations) {
		return nil
	}
	return &v.invocations[v.selected]
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}
