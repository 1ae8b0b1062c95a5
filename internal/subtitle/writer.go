package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writes the exported document to path, creating parent directories
func (d *Document) Write(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(d.Export()), 0644)
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Export())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write subtitles: %w", err)
	}
	return int64(n), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// default output path: <base>.<suffix>.srt next to the input
func OutputPath(input, suffix string) string {
	base := input[:len(input)-len(filepath.Ext(input))]
	if suffix == "" {
		return base + ".srt"
	}
	return fmt.Sprintf("%s.%s.srt", base, suffix)
}
