package mcp

import (
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Split plans and performs splits.
	Split driving.SplitService

	// History lists previous splits. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Split == nil {
		return ErrMissingSplitService
	}
	return nil
}
