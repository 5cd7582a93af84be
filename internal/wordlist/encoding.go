package wordlist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// AutoEncoding requests detection instead of a fixed encoding label.
const AutoEncoding = "auto"

// DetectEncoding guesses the encoding of data. A byte-order mark is trusted;
// otherwise the content is UTF-8 when it validates as such and Windows-1252
// when it does not.
func DetectEncoding(data []byte) (encoding.Encoding, string) {
	enc, name, certain := charset.DetermineEncoding(data, "text/plain")
	if certain {
		return enc, name
	}
	// DetermineEncoding only samples the head of the buffer.
	if utf8.Valid(data) {
		return unicode.UTF8, "utf-8"
	}
	if name == "utf-8" {
		return charmap.Windows1252, "windows-1252"
	}
	return enc, name
}

// Decode converts data to a UTF-8 string using label, or a detected encoding
// when label is empty or "auto". The returned name identifies the encoding
// actually applied.
func Decode(data []byte, label string) (string, string, error) {
	var (
		enc  encoding.Encoding
		name string
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || label == AutoEncoding {
		enc, name = DetectEncoding(data)
	} else {
		enc, name = charset.Lookup(label)
		if enc == nil {
			return "", "", fmt.Errorf("unknown encoding %q", label)
		}
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", name, fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), name, nil
}
