package domain

import "time"

// SplitRun is a split recorded in history.
type SplitRun struct {
	// ID is the unique identifier for the run.
	ID string `json:"id"`

	// SourcePath is the file that was split.
	SourcePath string `json:"source_path"`

	// Parts is the requested part count.
	Parts int `json:"parts"`

	// TotalLines is the number of lines read, zero if reading failed.
	TotalLines int `json:"total_lines"`

	// Outputs lists the part files that were written, in order.
	Outputs []string `json:"outputs"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the run finished or failed.
	EndedAt time.Time `json:"ended_at"`

	// Success is true when every part was written.
	Success bool `json:"success"`

	// Error holds the failure message for unsuccessful runs.
	Error string `json:"error,omitempty"`
}

// Duration returns how long the run took.
func (r *SplitRun) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}
