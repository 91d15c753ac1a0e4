package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
)

// mockReader serves documents from memory keyed by path.
type mockReader struct {
	docs  map[string][]string
	err   error
	calls int
}

func newMockReader(path string, lines ...string) *mockReader {
	return &mockReader{docs: map[string][]string{path: lines}}
}

func (m *mockReader) Read(_ context.Context, path, encoding string) (*domain.SourceDocument, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	lines, ok := m.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	base := filepath.Base(path)
	return &domain.SourceDocument{
		Path:     path,
		Dir:      filepath.Dir(path),
		BaseName: strings.TrimSuffix(base, filepath.Ext(base)),
		Encoding: encoding,
		Lines:    lines,
	}, nil
}

// mockWriter records every write in memory.
type mockWriter struct {
	mu       sync.Mutex
	files    map[string][]string
	order    []string
	opts     []driven.WriteOptions
	dirs     []string
	removed  []string
	failOn   string
	dirErr   error
	writeErr error
}

func newMockWriter() *mockWriter {
	return &mockWriter{files: make(map[string][]string)}
}

func (m *mockWriter) EnsureDir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirErr != nil {
		return m.dirErr
	}
	m.dirs = append(m.dirs, dir)
	return nil
}

func (m *mockWriter) Write(_ context.Context, path string, lines []string, opts driven.WriteOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && path == m.failOn {
		if m.writeErr != nil {
			return m.writeErr
		}
		return errors.New("disk full")
	}
	m.files[path] = append([]string(nil), lines...)
	m.order = append(m.order, path)
	m.opts = append(m.opts, opts)
	return nil
}

func (m *mockWriter) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	m.removed = append(m.removed, path)
	return nil
}

// failingHistoryStore rejects every operation.
type failingHistoryStore struct{}

func (failingHistoryStore) Save(context.Context, *domain.SplitRun) error {
	return errors.New("history unavailable")
}

func (failingHistoryStore) Get(context.Context, string) (*domain.SplitRun, error) {
	return nil, errors.New("history unavailable")
}

func (failingHistoryStore) List(context.Context, int) ([]domain.SplitRun, error) {
	return nil, errors.New("history unavailable")
}

func (failingHistoryStore) Clear(context.Context) error {
	return errors.New("history unavailable")
}

// recordingHistoryStore remembers the limit it was asked for.
type recordingHistoryStore struct {
	lastLimit int
	runs      []domain.SplitRun
}

func (r *recordingHistoryStore) Save(context.Context, *domain.SplitRun) error { return nil }

func (r *recordingHistoryStore) Get(_ context.Context, id string) (*domain.SplitRun, error) {
	for i := range r.runs {
		if r.runs[i].ID == id {
			return &r.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *recordingHistoryStore) List(_ context.Context, limit int) ([]domain.SplitRun, error) {
	r.lastLimit = limit
	return r.runs, nil
}

func (r *recordingHistoryStore) Clear(context.Context) error {
	r.runs = nil
	return nil
}
