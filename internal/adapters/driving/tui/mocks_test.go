package tui

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// mockSplitService writes nothing and reports one update per part.
type mockSplitService struct {
	err error
}

func (m *mockSplitService) Plan(_ context.Context, _ domain.SplitRequest) (*domain.SplitPlan, error) {
	return nil, m.err
}

func (m *mockSplitService) Split(
	_ context.Context,
	req domain.SplitRequest,
	progress domain.ProgressFunc,
) (*domain.SplitResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := &domain.SplitResult{SourcePath: req.Path, TotalLines: req.Parts}
	for i := range req.Parts {
		out := domain.OutputFile{Index: i, Path: domain.PartPath("/tmp", "f", i), Start: i, End: i + 1}
		result.Outputs = append(result.Outputs, out)
		if progress != nil {
			progress(domain.Progress{Completed: i + 1, Total: req.Parts, Output: out})
		}
	}
	return result, nil
}

// mockHistoryService returns a fixed list of runs.
type mockHistoryService struct {
	runs []domain.SplitRun
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.SplitRun, error) {
	return m.runs, nil
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.SplitRun, error) {
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	m.runs = nil
	return nil
}
