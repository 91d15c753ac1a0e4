package driven

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// HistoryStore persists split runs.
type HistoryStore interface {
	// Save stores a run. Saving an existing ID replaces it.
	Save(ctx context.Context, run *domain.SplitRun) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.SplitRun, error)

	// List returns the most recent runs first, at most limit entries.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.SplitRun, error)

	// Clear removes every recorded run.
	Clear(ctx context.Context) error
}
