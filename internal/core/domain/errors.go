package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Split Errors.

	// ErrFileNotFound indicates the source path does not exist or cannot be read.
	ErrFileNotFound = errors.New("file not found or not readable")

	// ErrInvalidPartCount indicates the part count is not a positive integer,
	// or exceeds the line count when strict part counts are enabled.
	ErrInvalidPartCount = errors.New("part count must be a positive integer")

	// ErrEncoding indicates the source content cannot be decoded as text
	// in the configured encoding.
	ErrEncoding = errors.New("file content cannot be decoded as text")

	// ErrWrite indicates an output part could not be created or written.
	// Parts written before the failure are left on disk unless rollback is enabled.
	ErrWrite = errors.New("failed to write output part")

	// Settings Errors.

	// ErrUnknownSetting indicates a settings key that linesplit does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")
)

// IsSplitError reports whether err is one of the split failures above,
// as opposed to an infrastructure or usage error.
func IsSplitError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrInvalidPartCount) ||
		errors.Is(err, ErrEncoding) ||
		errors.Is(err, ErrWrite)
}
