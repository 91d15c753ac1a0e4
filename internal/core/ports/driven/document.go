package driven

import (
	"context"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// DocumentReader loads a source file as an ordered sequence of lines.
type DocumentReader interface {
	// Read loads and decodes the file at path using the named encoding.
	// An empty encoding means domain.DefaultEncoding.
	// Returns domain.ErrFileNotFound if the path is missing, a directory
	// or unreadable, and domain.ErrEncoding if decoding fails.
	Read(ctx context.Context, path, encoding string) (*domain.SourceDocument, error)
}

// WriteOptions controls how a part is serialised.
type WriteOptions struct {
	// Encoding is the text encoding of the written file.
	Encoding string

	// LineEnding is the terminator written after every line.
	LineEnding domain.LineEnding
}

// PartWriter persists split output.
type PartWriter interface {
	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error

	// Write creates or truncates path and writes each line followed by the
	// configured terminator. An empty lines slice produces an empty file.
	Write(ctx context.Context, path string, lines []string, opts WriteOptions) error

	// Remove deletes a previously written part. Missing files are not an error.
	Remove(ctx context.Context, path string) error
}
