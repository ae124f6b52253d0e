package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/views/commands"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/views/console"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/views/history"
)

// App is the console application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	consoleView  *console.View
	commandsView *commands.View
	historyView  *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new console application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		consoleView:  console.NewView(s, km, ports.Commands),
		commandsView: commands.NewView(s, km, ports.Commands),
		historyView:  history.NewView(s, ports.History),
		currentView:  messages.ViewConsole,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.consoleView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("dsctl console"),
		a.consoleView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewConsole:
			a.consoleView, cmd = a.consoleView.Update(msg)
		case messages.ViewCommands:
			a.commandsView, cmd = a.commandsView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewConsole
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCommands:
			return a, a.commandsView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewConsole, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.LineChosen:
		a.currentView = messages.ViewConsole
		a.consoleView, cmd = a.consoleView.Update(msg)
		return a, cmd

	case messages.InvocationCompleted:
		a.err = msg.Err
		a.consoleView, cmd = a.consoleView.Update(msg)
		return a, cmd

	case messages.CommandsLoaded:
		a.commandsView, cmd = a.commandsView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.consoleView, cmd = a.consoleView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink etc.) to the console input.
	if a.currentView == messages.ViewConsole {
		a.consoleView, cmd = a.consoleView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCommands:
		return a.commandsView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.consoleView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Console:
  (type)      Command name followed by arguments
  enter       Run the line
  ↑/↓         Previous / next line
  pgup/pgdn   Scroll the transcript
  tab         Browse commands
  ctrl+r      Browse history
  ctrl+l      Clear the transcript
  ctrl+c      Quit

Arguments are typed by inference: true/false become booleans, text with a
dot becomes a number, null becomes Nil, integers become integers and
everything else stays text. Quote arguments that contain spaces.

The words clear, commands, history, help, exit and quit are handled by
the console itself.

[esc] back to console`
}

// Run starts the console and blocks until it exits or ctx is done.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Console returns the console view.
func (a *App) Console() *console.View {
	return a.consoleView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.consoleView.SetDimensions(width, height)
	a.commandsView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
