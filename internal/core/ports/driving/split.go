package driving

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// SplitService splits text files into evenly sized parts.
type SplitService interface {
	// Plan reads the source and computes the parts without writing anything.
	Plan(ctx context.Context, req domain.SplitRequest) (*domain.SplitPlan, error)

	// Split reads the source, writes every part in order and calls progress
	// after each part is written. progress may be nil.
	Split(ctx context.Context, req domain.SplitRequest, progress domain.ProgressFunc) (*domain.SplitResult, error)
}
