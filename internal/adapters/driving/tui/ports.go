// Package tui provides the interactive console of dsctl.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the console uses.
type Ports struct {
	// Commands invokes and lists registered commands.
	Commands driving.CommandService

	// History exposes recorded invocations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Commands == nil {
		return ErrMissingCommandService
	}
	return nil
}
