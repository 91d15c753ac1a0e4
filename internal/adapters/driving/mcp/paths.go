package mcp

import (
	"net/url"
	"path/filepath"
	"strings"
)

// localPath converts a file:// URI from an MCP client to a local path.
// Bare paths pass through unchanged.
func localPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil || (u.Host != "" && u.Host != "localhost") {
		return strings.TrimPrefix(uri, "file://")
	}
	return filepath.FromSlash(u.Path)
}
