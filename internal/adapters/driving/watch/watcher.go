package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
	"github.com/custodia-labs/linesplit/internal/logger"
)

// DefaultDebounce is how long a path must be quiet before it is split.
const DefaultDebounce = 500 * time.Millisecond

// AnyExtension matches every file name.
const AnyExtension = "*"

// Result reports the outcome of splitting one file.
type Result struct {
	Path   string
	Result *domain.SplitResult
	Err    error
}

// Options configures a Watcher.
type Options struct {
	// Parts is the number of parts each file is split into.
	Parts int

	// Extensions lists accepted file extensions, compared case-insensitively.
	// Nil accepts ".txt" only; AnyExtension accepts everything.
	Extensions []string

	// OutputDir overrides where parts are written.
	OutputDir string

	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration

	// OnResult is called on the event loop after each split.
	OnResult func(Result)
}

// Watcher splits files written into a directory.
type Watcher struct {
	service driving.SplitService
	dir     string
	opts    Options

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
}

// New creates a watcher for dir.
func New(service driving.SplitService, dir string, opts Options) (*Watcher, error) {
	if service == nil {
		return nil, ErrMissingSplitService
	}
	if opts.Parts <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPartCount, opts.Parts)
	}
	opts.Extensions = normaliseExtensions(opts.Extensions)
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Watcher{
		service: service,
		dir:     dir,
		opts:    opts,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches until ctx is cancelled or Close is called.
// It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.cancel = cancel
	w.mu.Unlock()

	info, err := os.Stat(w.dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", w.dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("watching %s for %s (%d parts)", w.dir, strings.Join(w.opts.Extensions, ", "), w.opts.Parts)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if path, ok := w.candidate(event); ok {
				pending[path] = struct{}{}
				timer.Reset(w.opts.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-timer.C:
			w.flush(ctx, pending)
			clear(pending)
		}
	}
}

// Close stops a running watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.cancel != nil {
		w.cancel()
	}
	return nil
}

// candidate returns the path to split for event, if any.
func (w *Watcher) candidate(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	name := filepath.Base(event.Name)
	switch {
	case isHidden(name):
		logger.Debug("watch: skipping hidden %s", event.Name)
		return "", false
	case domain.IsPartFile(name):
		return "", false
	case !w.accepts(name):
		logger.Debug("watch: skipping %s (extension)", event.Name)
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return event.Name, true
}

func (w *Watcher) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range w.opts.Extensions {
		if want == AnyExtension || want == ext {
			return true
		}
	}
	return false
}

// flush splits every pending path in name order.
func (w *Watcher) flush(ctx context.Context, pending map[string]struct{}) {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		res := w.split(ctx, path)
		if w.opts.OnResult != nil {
			w.opts.OnResult(res)
		}
	}
}

func (w *Watcher) split(ctx context.Context, path string) Result {
	logger.Info("watch: splitting %s", path)
	result, err := w.service.Split(ctx, domain.SplitRequest{
		Path:      path,
		Parts:     w.opts.Parts,
		OutputDir: w.opts.OutputDir,
	}, nil)
	if err != nil {
		logger.Warn("watch: split %s: %v", path, err)
	}
	return Result{Path: path, Result: result, Err: err}
}

// normaliseExtensions lowercases exts and adds missing leading dots.
// Nil yields the default of ".txt".
func normaliseExtensions(exts []string) []string {
	if exts == nil {
		return []string{".txt"}
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if ext != AnyExtension && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
