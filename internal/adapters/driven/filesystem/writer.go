package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.PartWriter = (*Writer)(nil)

// Options configures a Writer. Zero values use the defaults.
type Options struct {
	// FileMode is the permission for created parts. Default 0o644.
	FileMode os.FileMode
	// DirMode is the permission for created output directories. Default 0o755.
	DirMode os.FileMode
	// BufSize is the write buffer size in bytes. Default 64KiB.
	BufSize int
}

// Writer writes parts by truncating and rewriting the destination.
type Writer struct {
	permF   os.FileMode
	permD   os.FileMode
	bufSize int
}

// NewWriter creates a filesystem writer. opts may be nil.
func NewWriter(opts *Options) *Writer {
	w := &Writer{permF: 0o644, permD: 0o755, bufSize: 64 * 1024}
	if opts == nil {
		return w
	}
	if opts.FileMode != 0 {
		w.permF = opts.FileMode
	}
	if opts.DirMode != 0 {
		w.permD = opts.DirMode
	}
	if opts.BufSize > 0 {
		w.bufSize = opts.BufSize
	}
	return w
}

// EnsureDir creates dir and any missing parents.
func (w *Writer) EnsureDir(dir string) error {
	return os.MkdirAll(dir, w.permD)
}

// Write replaces the file at path with lines, each followed by the
// configured terminator, encoded with opts.Encoding.
func (w *Writer) Write(ctx context.Context, path string, lines []string, opts driven.WriteOptions) (err error) {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	enc, _, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.permF)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriterSize(f, w.bufSize)
	var out io.Writer = bw
	var tw io.WriteCloser
	if enc != nil {
		tw = transform.NewWriter(bw, enc.NewEncoder())
		out = tw
	}

	terminator := opts.LineEnding.Terminator()
	for i, line := range lines {
		if _, err := io.WriteString(out, line); err != nil {
			return encodeError(i, err)
		}
		if _, err := io.WriteString(out, terminator); err != nil {
			return err
		}
	}

	if tw != nil {
		if err := tw.Close(); err != nil {
			return encodeError(len(lines)-1, err)
		}
	}
	return bw.Flush()
}

// Remove deletes path. A file that is already gone is not an error.
func (w *Writer) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func encodeError(line int, err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return err
	}
	return fmt.Errorf("%w: line %d: %w", domain.ErrEncoding, line+1, err)
}
