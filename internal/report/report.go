// Package report reads and writes affix tables as "affix:score" text files.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"affixsplit/internal/affix"
	"affixsplit/internal/fileutil"
)

// ErrLocked is returned when another process is writing the same report.
var ErrLocked = errors.New("report is locked by another process")

// Write stores table at path, one "affix:score" line per entry ordered by
// descending score. The file is replaced atomically while holding an
// exclusive lock on path + ".lock", which is left on disk.
func Write(path string, table affix.Table) error {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	// The lock file is kept so every writer locks the same inode.
	defer func() { _ = lock.Unlock() }()

	if err := fileutil.WriteLines(path, Lines(table)); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Lines renders table as "affix:score" lines ordered by descending score.
func Lines(table affix.Table) []string {
	entries := table.Sorted()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Affix + ":" + FormatScore(e.Score)
	}
	return lines
}

// FormatScore renders a score in its shortest form, always with a decimal
// point ("4.1", "3.0").
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Read parses a report written by Write. Blank lines are ignored.
func Read(path string) (affix.Table, error) {
	lines, err := fileutil.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	table := make(affix.Table, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.LastIndexByte(line, ':')
		if idx <= 0 {
			return nil, fmt.Errorf("%s line %d: missing separator", path, i+1)
		}
		score, err := strconv.ParseFloat(line[idx+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid score %q", path, i+1, line[idx+1:])
		}
		table[line[:idx]] = score
	}
	return table, nil
}
