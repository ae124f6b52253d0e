// Package mcp provides an MCP (Model Context Protocol) server adapter for dsctl.
// It exposes every registered command as an MCP tool so AI assistants can
// invoke data-source commands directly.
package mcp

import "errors"

// ErrMissingCommandService is returned when the command service is not provided.
var ErrMissingCommandService = errors.New("mcp: command service is required")
