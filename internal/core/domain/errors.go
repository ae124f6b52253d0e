package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent command-layer failures.
// The structured error types below match these through errors.Is.
var (
	// ErrInvalidType indicates a Value variant did not match the target native type.
	ErrInvalidType = errors.New("invalid type")

	// ErrDecode indicates a Bytes value was not valid UTF-8 text.
	ErrDecode = errors.New("decode error")

	// ErrMissingArgument indicates an argument index past the end of the store.
	ErrMissingArgument = errors.New("missing argument")

	// ErrCommandNotFound indicates no adapter is registered under a name.
	ErrCommandNotFound = errors.New("command not found")

	// ErrAlreadyExists indicates a command name is already registered.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnsupportedSignature indicates a function cannot be adapted into a command.
	ErrUnsupportedSignature = errors.New("unsupported signature")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates an invocation was refused by the rate limiter.
	ErrRateLimited = errors.New("rate limited")
)

// TypeError reports a failed coercion from a Value into a native type.
type TypeError struct {
	// Expected describes the target native type, e.g. "int64".
	Expected string
	// Actual is the offending value.
	Actual Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: failed to parse %s for %#v", e.Expected, e.Actual)
}

// Is matches ErrInvalidType.
func (e *TypeError) Is(target error) bool { return target == ErrInvalidType }

// DecodeError reports bytes that are not valid UTF-8.
type DecodeError struct {
	Bytes []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: invalid utf-8 sequence in %s", formatBytes(e.Bytes))
}

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// MissingArgumentError reports an out-of-range argument index.
type MissingArgumentError struct {
	Index int
	Len   int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: index %d out of range for %d argument(s)", e.Index, e.Len)
}

// Is matches ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// CommandNotFoundError reports an unknown command name.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Name)
}

// Is matches ErrCommandNotFound and ErrNotFound.
func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound || target == ErrNotFound
}
