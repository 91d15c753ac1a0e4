package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"bare absolute", "/home/me/notes.txt", "/home/me/notes.txt"},
		{"bare relative", "notes.txt", "notes.txt"},
		{"empty", "", ""},
		{"file uri", "file:///home/me/notes.txt", "/home/me/notes.txt"},
		{"localhost", "file://localhost/tmp/a.txt", "/tmp/a.txt"},
		{"escaped", "file:///tmp/my%20notes.txt", "/tmp/my notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localPath(tt.uri))
		})
	}
}

func TestToRequest_ResolvesURIs(t *testing.T) {
	req := toRequest(SplitInput{
		Path:      "file:///data/in.txt",
		Parts:     3,
		OutputDir: "file:///data/out",
		Encoding:  "latin1",
	})

	assert.Equal(t, "/data/in.txt", req.Path)
	assert.Equal(t, "/data/out", req.OutputDir)
	assert.Equal(t, 3, req.Parts)
	assert.Equal(t, "latin1", req.Encoding)
}
