package tui

import "errors"

// ErrMissingSplitService is returned when the split service is not provided.
var ErrMissingSplitService = errors.New("tui: split service is required")
