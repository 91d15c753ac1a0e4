// Package tui provides the interactive terminal interface for linesplit:
// pick a file, enter a part count, watch the parts being written.
package tui

import (
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI calls.
type Ports struct {
	// Split performs splits. Required.
	Split driving.SplitService

	// History lists recorded splits. Optional; the history view
	// shows an empty list without it.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Split == nil {
		return ErrMissingSplitService
	}
	return nil
}
