// Package console provides the command prompt view of the TUI.
package console

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// View is the console: a command line, the transcript of what ran and a
// status bar.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.CommandLine
	transcript *list.Transcript
	statusbar  *status.Bar

	commands driving.CommandService
	ctx      context.Context

	width   int
	height  int
	ready   bool
	running bool
}

// NewView creates a new console view.
func NewView(s *styles.Styles, km *keymap.KeyMap, commands driving.CommandService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	if commands != nil {
		bar.SetCommandCount(len(commands.List()))
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewCommandLine(s),
		transcript: list.NewTranscript(s),
		statusbar:  bar,
		commands:   commands,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context invocations run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the console view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.InvocationCompleted:
		v.handleInvocationCompleted(msg)
		return v, nil

	case messages.LineChosen:
		v.input.SetValue(msg.Line)
		return v, v.input.Focus()

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Run):
		return v.submit()
	case keymap.Matches(key, v.keymap.Commands):
		return v, changeView(messages.ViewCommands)
	case keymap.Matches(key, v.keymap.History):
		return v, changeView(messages.ViewHistory)
	case keymap.Matches(key, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(key, v.keymap.Clear):
		v.transcript.Clear()
		v.statusbar.Clear()
		return v, nil
	case keymap.Matches(key, v.keymap.Up):
		v.input.Previous()
		return v, nil
	case keymap.Matches(key, v.keymap.Down):
		v.input.Next()
		return v, nil
	case keymap.Matches(key, v.keymap.ScrollUp), keymap.Matches(key, v.keymap.ScrollDown):
		v.transcript, _ = v.transcript.Update(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit runs the current line. A few words are handled by the console
// itself: clear, commands, history, help, exit and quit.
func (v *View) submit() (*View, tea.Cmd) {
	line := strings.TrimSpace(v.input.Value())
	if line == "" || v.running {
		return v, nil
	}
	v.input.Remember(line)
	v.input.Reset()

	switch line {
	case "clear":
		v.transcript.Clear()
		v.statusbar.Clear()
		return v, nil
	case "commands":
		return v, changeView(messages.ViewCommands)
	case "history":
		return v, changeView(messages.ViewHistory)
	case "help":
		return v, changeView(messages.ViewHelp)
	case "exit", "quit":
		return v, tea.Quit
	}

	words, err := input.SplitLine(line)
	if err != nil {
		v.transcript.Add(list.Entry{Line: line, Err: err})
		return v, nil
	}

	v.running = true
	v.statusbar.SetState(status.StateRunning)
	return v, v.invoke(line, words[0], words[1:])
}

// invoke runs a command and reports the outcome as a message.
func (v *View) invoke(line, name string, args []string) tea.Cmd {
	return func() tea.Msg {
		if v.commands == nil {
			return messages.InvocationCompleted{Line: line, Err: ErrNoCommandService}
		}

		started := time.Now()
		value, err := v.commands.Invoke(v.ctx, name, args)
		return messages.InvocationCompleted{
			Line:     line,
			Value:    value,
			Err:      err,
			Duration: time.Since(started),
		}
	}
}

// handleInvocationCompleted adds the outcome to the transcript.
func (v *View) handleInvocationCompleted(msg messages.InvocationCompleted) {
	v.running = false
	v.transcript.Add(list.Entry{
		Line:     msg.Line,
		Value:    msg.Value,
		Err:      msg.Err,
		Duration: msg.Duration,
	})

	v.statusbar.SetLastDuration(msg.Duration)
	if msg.Err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	v.statusbar.Clear()
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the console.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)
	sections = append(sections, v.styles.Title.Render("dsctl console"), "")
	sections = append(sections, v.transcript.View(), "")
	sections = append(sections, v.input.View())
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.transcript.SetDimensions(width, height-8) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Running reports whether an invocation is in flight.
func (v *View) Running() bool {
	return v.running
}

// Line returns the current command line.
func (v *View) Line() string {
	return v.input.Value()
}

// SetLine sets the command line.
func (v *View) SetLine(line string) {
	v.input.SetValue(line)
}

// Entries returns the transcript entries, oldest first.
func (v *View) Entries() []list.Entry {
	return v.transcript.Entries()
}

// Last returns the newest transcript entry, or nil when it is empty.
func (v *View) Last() *list.Entry {
	entries := v.transcript.Entries()
	if len(entries) == 0 {
		return nil
	}
	return &entries[len(entries)-1]
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}
