// Package mcp provides an MCP (Model Context Protocol) server adapter for linesplit.
// It lets AI assistants plan and perform splits of local text files.
package mcp

import "errors"

// ErrMissingSplitService is returned when the split service is not provided.
var ErrMissingSplitService = errors.New("mcp: split service is required")
