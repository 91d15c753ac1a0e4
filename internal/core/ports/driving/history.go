package driving

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// HistoryService exposes previously recorded split runs.
type HistoryService interface {
	// List returns recent runs, most recent first.
	// A limit of zero or less uses the configured default.
	List(ctx context.Context, limit int) ([]domain.SplitRun, error)

	// Get retrieves a single run.
	Get(ctx context.Context, id string) (*domain.SplitRun, error)

	// Clear removes all recorded runs.
	Clear(ctx context.Context) error
}
