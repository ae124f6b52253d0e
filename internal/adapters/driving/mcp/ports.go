package mcp

import (
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Commands lists and invokes registered commands.
	Commands driving.CommandService

	// History exposes recorded invocations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Commands == nil {
		return ErrMissingCommandService
	}
	return nil
}
