package mcp

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// mockSplitService is a mock implementation of driving.SplitService.
type mockSplitService struct {
	result  *domain.SplitResult
	plan    *domain.SplitPlan
	err     error
	lastReq domain.SplitRequest
}

func (m *mockSplitService) Plan(_ context.Context, req domain.SplitRequest) (*domain.SplitPlan, error) {
	m.lastReq = req
	return m.plan, m.err
}

func (m *mockSplitService) Split(
	_ context.Context,
	req domain.SplitRequest,
	_ domain.ProgressFunc,
) (*domain.SplitResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.SplitRun
	run  *domain.SplitRun
	err  error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.SplitRun, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.SplitRun, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
