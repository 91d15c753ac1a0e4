package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"single without terminator", "a", []string{"a"}},
		{"lf with trailing terminator", "a\nb\n", []string{"a", "b"}},
		{"lf without trailing terminator", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb\r", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"only terminator", "\n", []string{""}},
		{"two terminators", "\n\n", []string{"", ""}},
		{"cr then lf counted once", "\r\n", []string{""}},
		{"lf then cr counted twice", "\n\r", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.text))
		})
	}
}
