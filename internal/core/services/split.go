package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
	"github.com/custodia-labs/linesplit/internal/logger"
)

// Ensure SplitService implements the interface.
var _ driving.SplitService = (*SplitService)(nil)

// SplitService reads a text file and writes its lines into evenly sized parts.
type SplitService struct {
	reader   driven.DocumentReader
	writer   driven.PartWriter
	settings driving.SettingsService
	history  driven.HistoryStore

	now   func() time.Time
	newID func() string
}

// SplitOption configures a SplitService.
type SplitOption func(*SplitService)

// WithClock overrides the time source used for run timestamps.
func WithClock(now func() time.Time) SplitOption {
	return func(s *SplitService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how run IDs are generated.
func WithIDGenerator(newID func() string) SplitOption {
	return func(s *SplitService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewSplitService creates a new split service.
// settings and history are optional: without settings the defaults apply,
// without history runs are not recorded.
func NewSplitService(
	reader driven.DocumentReader,
	writer driven.PartWriter,
	settings driving.SettingsService,
	history driven.HistoryStore,
	opts ...SplitOption,
) *SplitService {
	s := &SplitService{
		reader:   reader,
		writer:   writer,
		settings: settings,
		history:  history,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan reads the source and computes every part without writing.
func (s *SplitService) Plan(ctx context.Context, req domain.SplitRequest) (*domain.SplitPlan, error) {
	cfg := s.loadSettings()

	doc, parts, err := s.prepare(ctx, req, cfg)
	if err != nil {
		return nil, err
	}

	outDir := s.outputDir(req, cfg, doc)
	return &domain.SplitPlan{
		SourcePath: doc.Path,
		Encoding:   doc.Encoding,
		TotalLines: doc.LineCount(),
		OutputDir:  outDir,
		Outputs:    outputsFor(outDir, doc.BaseName, parts),
	}, nil
}

// Split writes each part of the source file in order.
// Progress is reported after every part. The operation is not
// transactional: when a write fails, earlier parts stay on disk unless
// rollback is enabled in settings.
func (s *SplitService) Split(
	ctx context.Context,
	req domain.SplitRequest,
	progress domain.ProgressFunc,
) (*domain.SplitResult, error) {
	cfg := s.loadSettings()
	run := &domain.SplitRun{
		ID:         s.newID(),
		SourcePath: sourcePathFor(req.Path),
		Parts:      req.Parts,
		StartedAt:  s.now(),
	}

	result, err := s.split(ctx, req, cfg, run, progress)

	run.EndedAt = s.now()
	run.Success = err == nil
	if err != nil {
		run.Error = err.Error()
	}
	s.record(ctx, cfg, run)

	if err != nil {
		return nil, err
	}
	result.Duration = run.Duration()
	return result, nil
}

func (s *SplitService) split(
	ctx context.Context,
	req domain.SplitRequest,
	cfg domain.AppSettings,
	run *domain.SplitRun,
	progress domain.ProgressFunc,
) (*domain.SplitResult, error) {
	logger.Section("Split")
	logger.Debug("Source: %s, parts: %d", req.Path, req.Parts)

	doc, parts, err := s.prepare(ctx, req, cfg)
	if err != nil {
		return nil, err
	}
	run.SourcePath = doc.Path
	run.TotalLines = doc.LineCount()

	outDir := s.outputDir(req, cfg, doc)
	if outDir != doc.Dir {
		if err := s.writer.EnsureDir(outDir); err != nil {
			return nil, fmt.Errorf("%w: create output directory %s: %w", domain.ErrWrite, outDir, err)
		}
	}

	opts := driven.WriteOptions{
		Encoding:   doc.Encoding,
		LineEnding: cfg.Split.LineEnding,
	}
	outputs := outputsFor(outDir, doc.BaseName, parts)
	defer logger.Timed("Writing parts")()

	// Once writing starts every part is written; cancellation is not honoured.
	ctx = context.WithoutCancel(ctx)
	for i, part := range parts {
		out := outputs[i]
		if err := s.writer.Write(ctx, out.Path, doc.Slice(part), opts); err != nil {
			logger.Warn("Writing part %d failed: %v", part.Number(), err)
			if cfg.Split.Rollback || req.Rollback {
				s.rollback(ctx, run.Outputs)
				run.Outputs = nil
			}
			return nil, fmt.Errorf("%w: part %d (%s): %w", domain.ErrWrite, part.Number(), out.Path, err)
		}
		run.Outputs = append(run.Outputs, out.Path)
		logger.Debug("Wrote part %d: lines [%d, %d) -> %s", part.Number(), part.Start, part.End, out.Path)

		if progress != nil {
			progress(domain.Progress{Completed: i + 1, Total: len(parts), Output: out})
		}
	}

	logger.Info("Split %s into %d parts (%d lines)", doc.Path, len(parts), doc.LineCount())

	return &domain.SplitResult{
		RunID:      run.ID,
		SourcePath: doc.Path,
		TotalLines: doc.LineCount(),
		Outputs:    outputs,
	}, nil
}

// prepare validates the request, loads the source and partitions it.
func (s *SplitService) prepare(
	ctx context.Context,
	req domain.SplitRequest,
	cfg domain.AppSettings,
) (*domain.SourceDocument, []domain.PartSpec, error) {
	if req.Parts <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPartCount, req.Parts)
	}
	if req.Path == "" {
		return nil, nil, fmt.Errorf("%w: no path given", domain.ErrFileNotFound)
	}

	encoding := req.Encoding
	if encoding == "" {
		encoding = cfg.Split.Encoding
	}

	doc, err := s.reader.Read(ctx, req.Path, encoding)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", req.Path, err)
	}
	logger.Debug("Read %d lines (%s)", doc.LineCount(), doc.Encoding)

	if (cfg.Split.StrictParts || req.StrictParts) && req.Parts > doc.LineCount() {
		return nil, nil, fmt.Errorf("%w: %d parts requested but the file has %d lines",
			domain.ErrInvalidPartCount, req.Parts, doc.LineCount())
	}

	parts, err := domain.Partition(doc.LineCount(), req.Parts)
	if err != nil {
		return nil, nil, err
	}
	return doc, parts, nil
}

// outputDir resolves where parts go: request, then settings, then the source directory.
func (s *SplitService) outputDir(req domain.SplitRequest, cfg domain.AppSettings, doc *domain.SourceDocument) string {
	switch {
	case req.OutputDir != "":
		return absOrSelf(req.OutputDir)
	case cfg.Split.OutputDir != "":
		return absOrSelf(cfg.Split.OutputDir)
	default:
		return doc.Dir
	}
}

// rollback removes parts written by a failed run. Removal errors are logged.
func (s *SplitService) rollback(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := s.writer.Remove(ctx, p); err != nil {
			logger.Warn("Rollback could not remove %s: %v", p, err)
		}
	}
	logger.Info("Rolled back %d written parts", len(paths))
}

// record stores the run in history. Failures never fail the split.
func (s *SplitService) record(ctx context.Context, cfg domain.AppSettings, run *domain.SplitRun) {
	if s.history == nil || !cfg.History.Enabled {
		return
	}
	if err := s.history.Save(ctx, run); err != nil {
		logger.Warn("Recording split run %s failed: %v", run.ID, err)
	}
}

func (s *SplitService) loadSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	cfg, err := s.settings.Get()
	if err != nil || cfg == nil {
		logger.Warn("Loading settings failed, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *cfg
}

func outputsFor(dir, baseName string, parts []domain.PartSpec) []domain.OutputFile {
	outputs := make([]domain.OutputFile, len(parts))
	for i, p := range parts {
		outputs[i] = domain.OutputFile{
			Index: p.Index,
			Path:  domain.PartPath(dir, baseName, p.Index),
			Start: p.Start,
			End:   p.End,
		}
	}
	return outputs
}

// sourcePathFor resolves a requested path for history; an empty path stays empty.
func sourcePathFor(path string) string {
	if path == "" {
		return ""
	}
	return absOrSelf(path)
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
