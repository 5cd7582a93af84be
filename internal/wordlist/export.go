package wordlist

import (
	"fmt"

	"affixsplit/internal/fileutil"
)

// WriteWords writes one word per line to path, replacing any existing file.
func WriteWords(path string, words []string) error {
	if err := fileutil.WriteLines(path, words); err != nil {
		return fmt.Errorf("write word list %s: %w", path, err)
	}
	return nil
}
