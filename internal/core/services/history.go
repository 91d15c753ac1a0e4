package services

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded split runs.
type HistoryService struct {
	store    driven.HistoryStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service.
// settings is optional and only supplies the default list limit.
func NewHistoryService(store driven.HistoryStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
	}
}

// List returns recent runs, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.SplitRun, error) {
	if limit <= 0 {
		limit = s.defaultLimit()
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a single run.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.SplitRun, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Clear removes all recorded runs.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *HistoryService) defaultLimit() int {
	defaults := domain.DefaultAppSettings()
	if s.settings == nil {
		return defaults.History.Limit
	}
	cfg, err := s.settings.Get()
	if err != nil || cfg == nil || cfg.History.Limit <= 0 {
		return defaults.History.Limit
	}
	return cfg.History.Limit
}
