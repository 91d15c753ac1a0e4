package domain

import "runtime"

const unknownDescription = "Unknown"

// DefaultEncoding is the text encoding used when none is configured.
const DefaultEncoding = "utf-8"

// EncodingAuto asks the reader to detect the source encoding.
// Valid UTF-8 is always read as UTF-8.
const EncodingAuto = "auto"

// LineEnding selects the terminator written after each output line.
type LineEnding string

// Available line endings.
const (
	// LineEndingNative uses the platform convention (CRLF on Windows, LF elsewhere).
	LineEndingNative LineEnding = "native"

	// LineEndingLF always writes "\n".
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF always writes "\r\n".
	LineEndingCRLF LineEnding = "crlf"
)

// IsValid returns true if the line ending is recognised.
func (e LineEnding) IsValid() bool {
	switch e {
	case LineEndingNative, LineEndingLF, LineEndingCRLF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e LineEnding) String() string {
	return string(e)
}

// Description returns a human-readable description of the line ending.
func (e LineEnding) Description() string {
	switch e {
	case LineEndingNative:
		return "Native (platform default)"
	case LineEndingLF:
		return "LF (\\n)"
	case LineEndingCRLF:
		return "CRLF (\\r\\n)"
	default:
		return unknownDescription
	}
}

// Terminator returns the bytes written after each line.
// Unrecognised values fall back to the native terminator.
func (e LineEnding) Terminator() string {
	switch e {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	}
}

// AllLineEndings returns all available line endings.
func AllLineEndings() []LineEnding {
	return []LineEnding{
		LineEndingNative,
		LineEndingLF,
		LineEndingCRLF,
	}
}

// SplitSettings holds split behaviour configuration.
type SplitSettings struct {
	// OutputDir is where parts are written.
	// Empty writes parts next to the source file.
	OutputDir string

	// Encoding is the text encoding of source files and parts.
	Encoding string

	// LineEnding is the terminator written after each line.
	LineEnding LineEnding

	// StrictParts rejects part counts larger than the line count
	// instead of writing empty parts.
	StrictParts bool

	// Rollback removes parts already written when a later part fails.
	Rollback bool
}

// HistorySettings holds split history configuration.
type HistorySettings struct {
	// Enabled records each split in the history store.
	Enabled bool

	// Limit is the default number of runs listed.
	Limit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Split holds split behaviour settings.
	Split SplitSettings

	// History holds history settings.
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Parts go next to the source, UTF-8 is assumed, extra parts are allowed
// to be empty and failed splits are not rolled back.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Split: SplitSettings{
			OutputDir:   "",
			Encoding:    DefaultEncoding,
			LineEnding:  LineEndingNative,
			StrictParts: false,
			Rollback:    false,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   20,
		},
	}
}
