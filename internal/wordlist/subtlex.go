package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"affixsplit/internal/textutil"
)

// SUBTLEX-DE column names.
const (
	ColumnWord       = "Word"
	ColumnCount      = "WFfreqcount"
	ColumnSpellCheck = "spell-check OK (1/0)"
)

// ErrMissingColumn indicates a SUBTLEX header without a required column.
var ErrMissingColumn = errors.New("missing column")

// Corpus is the parsed content of a SUBTLEX export.
type Corpus struct {
	// Words holds the Word column of spell-checked rows, in file order.
	Words []string
	// Counts sums WFfreqcount over every row by folded word.
	Counts map[string]int64
}

// ParseSubtlex parses a tab-separated SUBTLEX export with a header row.
func ParseSubtlex(text string) (*Corpus, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	wordCol, ok := idx[ColumnWord]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnWord)
	}
	countCol, ok := idx[ColumnCount]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnCount)
	}
	spellCol, ok := idx[ColumnSpellCheck]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnSpellCheck)
	}
	need := max(wordCol, countCol, spellCol)

	corpus := &Corpus{Counts: map[string]int64{}}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := r.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) <= need {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, need+1, len(record))
		}

		word := strings.TrimSpace(record[wordCol])
		count, err := strconv.ParseInt(strings.TrimSpace(record[countCol]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s %q is not an integer", line, ColumnCount, record[countCol])
		}
		if word == "" {
			continue
		}
		corpus.Counts[textutil.Fold(word)] += count
		if strings.TrimSpace(record[spellCol]) == "1" {
			corpus.Words = append(corpus.Words, word)
		}
	}
	return corpus, nil
}
