package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader loads whole text files into memory.
type Reader struct{}

// NewReader creates a new filesystem reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read decodes the file at path with the named encoding and splits it into lines.
func (r *Reader) Read(ctx context.Context, path, encoding string) (*domain.SourceDocument, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFileNotFound, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFileNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrFileNotFound, path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFileNotFound, path, err)
	}

	text, name, err := decode(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &domain.SourceDocument{
		Path:     abs,
		Dir:      filepath.Dir(abs),
		BaseName: domain.BaseName(abs),
		Encoding: name,
		Lines:    splitLines(text),
	}, nil
}
