// Package watch is a driving adapter that splits text files as they
// appear in a directory.
//
// Events from fsnotify are debounced per path and handled on a single
// goroutine, so at most one split runs at a time. Files that look like
// split outputs (name_partN.txt) and hidden files are ignored.
package watch

import "errors"

// ErrMissingSplitService is returned when the split service is not provided.
var ErrMissingSplitService = errors.New("watch: split service is required")

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("watch: watcher is closed")
