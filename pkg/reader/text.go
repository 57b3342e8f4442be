package reader

import (
	"fmt"
	"os"
	"strings"
)

// TextReader loads plain UTF-8 text files, one block per line.
type TextReader struct{}

func (TextReader) ReadBlocks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n"), nil
}
