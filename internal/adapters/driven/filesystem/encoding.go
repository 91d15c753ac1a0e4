package filesystem

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

const (
	utf8BOM = "\xef\xbb\xbf"
	bomRune = "\ufeff"
)

// lookupEncoding resolves a label such as "latin1" or "UTF-16LE".
// It returns a nil encoding for UTF-8, which is handled without a transformer
// so that invalid input is rejected instead of replaced.
func lookupEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil, domain.DefaultEncoding, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unknown encoding %q", domain.ErrEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	if name == domain.DefaultEncoding {
		return nil, name, nil
	}
	return enc, name, nil
}

// decode converts raw bytes to UTF-8 text without a leading BOM.
func decode(data []byte, label string) (string, string, error) {
	if strings.EqualFold(strings.TrimSpace(label), domain.EncodingAuto) {
		label = detectEncoding(data)
	}

	enc, name, err := lookupEncoding(label)
	if err != nil {
		return "", "", err
	}

	if enc == nil {
		if !utf8.Valid(data) {
			return "", "", fmt.Errorf("%w: input is not valid utf-8", domain.ErrEncoding)
		}
		return strings.TrimPrefix(string(data), utf8BOM), name, nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("%w: decode as %s: %w", domain.ErrEncoding, name, err)
	}
	return strings.TrimPrefix(string(decoded), bomRune), name, nil
}

// detectEncoding picks a label for data. Byte order marks and byte
// frequencies decide once the content is known not to be UTF-8.
func detectEncoding(data []byte) string {
	if utf8.Valid(data) {
		return domain.DefaultEncoding
	}
	_, name, _ := charset.DetermineEncoding(data, "text/plain")
	return name
}
