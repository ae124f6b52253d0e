package tui

import "errors"

// ErrMissingCommandService is returned when the command service is not provided.
var ErrMissingCommandService = errors.New("tui: command service is required")
