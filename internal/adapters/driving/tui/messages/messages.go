// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewConsole is the command prompt and transcript.
	ViewConsole ViewType = iota
	// ViewCommands lists registered commands.
	ViewCommands
	// ViewHistory lists recorded invocations.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewConsole:
		return "console"
	case ViewCommands:
		return "commands"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// InvocationCompleted carries the outcome of one command line.
type InvocationCompleted struct {
	Line     string
	Value    domain.Value
	Err      error
	Duration time.Duration
}

// CommandsLoaded carries the registered commands.
type CommandsLoaded struct {
	Commands []domain.CommandInfo
}

// LineChosen is sent when a list view hands a line back to the console
// prompt, e.g. a command name or a recorded invocation.
type LineChosen struct {
	Line string
}

// HistoryLoaded carries recorded invocations, newest first.
type HistoryLoaded struct {
	Invocations []domain.Invocation
	Err         error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
