package domain

import "time"

// Param describes one argument a command reads from the argument store.
type Param struct {
	// Index is the position in the argument store.
	Index int

	// Type names the native type the argument is coerced into.
	Type string

	// Variant is the Value variant the argument must hold.
	// TypeString and TypeNil mark parameters that accept any variant.
	Variant DataType
}

// CommandInfo describes a registered command.
type CommandInfo struct {
	// Name is the command name, e.g. "shell_echo".
	Name string

	// Module is the data-source module that registered the command.
	Module string

	// Description is a one-line summary.
	Description string

	// Params lists the store-backed parameters in declaration order.
	Params []Param

	// Arity is the minimum argument store length.
	Arity int
}

// Invocation records one command invocation.
type Invocation struct {
	// ID is the unique invocation identifier.
	ID string

	// Command is the invoked command name.
	Command string

	// Args are the display forms of the arguments.
	Args []string

	// ResultType is the variant of the result. Nil on failure.
	ResultType DataType

	// Result is the display form of the result.
	Result string

	// Error is the error message when the invocation failed.
	Error string

	// StartedAt is when the invocation began.
	StartedAt time.Time

	// Duration is how long the invocation took.
	Duration time.Duration
}

// Failed reports whether the invocation returned an error.
func (i *Invocation) Failed() bool {
	return i.Error != ""
}
