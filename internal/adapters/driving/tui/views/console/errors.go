package console

import "errors"

// Error definitions for the console view.
var (
	// ErrNoCommandService indicates that no command service was provided.
	ErrNoCommandService = errors.New("command service is required")
)
