package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

type mockSplitService struct {
	mu       sync.Mutex
	requests []domain.SplitRequest
	err      error
}

func (m *mockSplitService) Plan(_ context.Context, _ domain.SplitRequest) (*domain.SplitPlan, error) {
	return nil, nil
}

func (m *mockSplitService) Split(
	_ context.Context,
	req domain.SplitRequest,
	_ domain.ProgressFunc,
) (*domain.SplitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SplitResult{SourcePath: req.Path}, nil
}

func (m *mockSplitService) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, len(m.requests))
	for i, r := range m.requests {
		paths[i] = r.Path
	}
	return paths
}

func TestNew(t *testing.T) {
	t.Run("requires split service", func(t *testing.T) {
		_, err := New(nil, t.TempDir(), Options{Parts: 2})
		assert.ErrorIs(t, err, ErrMissingSplitService)
	})

	t.Run("rejects non-positive part counts", func(t *testing.T) {
		for _, parts := range []int{0, -3} {
			_, err := New(&mockSplitService{}, t.TempDir(), Options{Parts: parts})
			assert.ErrorIs(t, err, domain.ErrInvalidPartCount)
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		w, err := New(&mockSplitService{}, "/in", Options{Parts: 2})

		require.NoError(t, err)
		assert.Equal(t, "/in", w.Dir())
		assert.Equal(t, []string{".txt"}, w.opts.Extensions)
		assert.Equal(t, DefaultDebounce, w.opts.Debounce)
	})

	t.Run("normalises extensions without touching the caller's slice", func(t *testing.T) {
		exts := []string{"CSV", " .Log ", "", "*"}

		w, err := New(&mockSplitService{}, "/in", Options{Parts: 2, Extensions: exts})

		require.NoError(t, err)
		assert.Equal(t, []string{".csv", ".log", "*"}, w.opts.Extensions)
		assert.Equal(t, "CSV", exts[0])
	})
}

func TestWatcher_Candidate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "NOTES2.TXT", "data.csv", ".hidden.txt", "notes_part1.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	tests := []struct {
		name string
		file string
		op   fsnotify.Op
		exts []string
		want bool
	}{
		{"create text file", "notes.txt", fsnotify.Create, nil, true},
		{"write text file", "notes.txt", fsnotify.Write, nil, true},
		{"write and chmod", "notes.txt", fsnotify.Write | fsnotify.Chmod, nil, true},
		{"upper case extension", "NOTES2.TXT", fsnotify.Create, nil, true},
		{"chmod only", "notes.txt", fsnotify.Chmod, nil, false},
		{"remove", "notes.txt", fsnotify.Remove, nil, false},
		{"rename", "notes.txt", fsnotify.Rename, nil, false},
		{"hidden file", ".hidden.txt", fsnotify.Create, nil, false},
		{"split output", "notes_part1.txt", fsnotify.Create, nil, false},
		{"other extension", "data.csv", fsnotify.Create, nil, false},
		{"other extension allowed", "data.csv", fsnotify.Create, []string{".csv"}, true},
		{"any extension", "data.csv", fsnotify.Create, []string{AnyExtension}, true},
		{"directory", "sub.txt", fsnotify.Create, nil, false},
		{"vanished file", "gone.txt", fsnotify.Create, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(&mockSplitService{}, dir, Options{Parts: 2, Extensions: tt.exts})
			require.NoError(t, err)
			path := filepath.Join(dir, tt.file)

			got, ok := w.candidate(fsnotify.Event{Name: path, Op: tt.op})

			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, path, got)
			}
		})
	}
}

func TestWatcher_Flush(t *testing.T) {
	svc := &mockSplitService{err: domain.ErrEncoding}
	var results []Result
	w, err := New(svc, "/in", Options{
		Parts:     3,
		OutputDir: "/out",
		OnResult:  func(r Result) { results = append(results, r) },
	})
	require.NoError(t, err)

	w.flush(context.Background(), map[string]struct{}{"/in/b.txt": {}, "/in/a.txt": {}})

	assert.Equal(t, []string{"/in/a.txt", "/in/b.txt"}, svc.paths())
	assert.Equal(t, domain.SplitRequest{Path: "/in/a.txt", Parts: 3, OutputDir: "/out"}, svc.requests[0])
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, domain.ErrEncoding)
}

func TestWatcher_Flush_StopsOnCancel(t *testing.T) {
	svc := &mockSplitService{}
	w, err := New(svc, "/in", Options{Parts: 2})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w.flush(ctx, map[string]struct{}{"/in/a.txt": {}})

	assert.Empty(t, svc.paths())
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	svc := &mockSplitService{}
	results := make(chan Result, 4)
	w, err := New(svc, dir, Options{
		Parts:    2,
		Debounce: 100 * time.Millisecond,
		OnResult: func(r Result) { results <- r },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "drop.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drop_part1.txt"), []byte("a\n"), 0o644))

	select {
	case r := <-results:
		assert.Equal(t, path, r.Path)
		assert.NoError(t, r.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for split")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, []string{path}, svc.paths())
}

func TestWatcher_Run_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		w, err := New(&mockSplitService{}, filepath.Join(t.TempDir(), "nope"), Options{Parts: 2})
		require.NoError(t, err)

		err = w.Run(context.Background())

		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		w, err := New(&mockSplitService{}, file, Options{Parts: 2})
		require.NoError(t, err)

		assert.ErrorContains(t, w.Run(context.Background()), "not a directory")
	})

	t.Run("closed", func(t *testing.T) {
		w, err := New(&mockSplitService{}, t.TempDir(), Options{Parts: 2})
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		assert.ErrorIs(t, w.Run(context.Background()), ErrClosed)
	})
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden(".notes.txt"))
	assert.False(t, isHidden("notes.txt"))
	assert.False(t, isHidden("."))
	assert.False(t, isHidden(".."))
}
