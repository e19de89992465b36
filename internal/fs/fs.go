package fs

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a UTF-8 text file into its newline-split representation.
// The split round-trips exactly: a trailing newline shows up as a final
// empty element, and WriteLines restores it.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// WriteLines writes the newline-split representation back out, overwriting
// any existing file at path.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
