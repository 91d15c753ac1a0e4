package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Runs are lost when the process exits.
type HistoryStore struct {
	mu   sync.RWMutex
	runs map[string]domain.SplitRun
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		runs: make(map[string]domain.SplitRun),
	}
}

// Save stores or replaces a run.
func (s *HistoryStore) Save(_ context.Context, run *domain.SplitRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *run
	stored.Outputs = append([]string(nil), run.Outputs...)
	s.runs[run.ID] = stored
	return nil
}

// Get retrieves a run by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.SplitRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// List returns runs ordered by start time, most recent first.
// A limit of zero or less returns every run.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.SplitRun, error) {
	s.mu.RLock()
	result := make([]domain.SplitRun, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes every run.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = make(map[string]domain.SplitRun)
	return nil
}
