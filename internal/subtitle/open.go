package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open reads and parses a .srt file.
func Open(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

var byteOrderMarks = [][]byte{
	{0xef, 0xbb, 0xbf},
	{0xff, 0xfe},
	{0xfe, 0xff},
}

// Decode reads raw file bytes and parses them. A UTF-8 or UTF-16 byte order
// mark picks the encoding; without one the data is UTF-8 when valid and
// Windows-1252 otherwise. CRLF line endings are normalized to LF.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading SRT data: %w", err)
	}

	var decoder transform.Transformer = charmap.Windows1252.NewDecoder()
	if hasByteOrderMark(raw) || utf8.Valid(raw) {
		decoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	data, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding SRT data: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return Parse(text)
}

func hasByteOrderMark(data []byte) bool {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}
	return false
}
