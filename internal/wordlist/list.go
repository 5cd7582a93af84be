package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"affixsplit/internal/textutil"
)

// Format identifies how a word list file was parsed.
type Format string

const (
	FormatPlain   Format = "plain"
	FormatSubtlex Format = "subtlex"
)

// List is a loaded primary word list.
type List struct {
	Path     string
	Format   Format
	Encoding string
	// Words keeps the original casing; folding happens per stage.
	Words []string
	// Counts is populated for SUBTLEX inputs only, keyed by folded word.
	Counts map[string]int64
}

// Load reads the primary word list at path. SUBTLEX exports are recognised by
// file name or by their header row.
func Load(path, encodingLabel string) (*List, error) {
	text, encName, err := readText(path, encodingLabel)
	if err != nil {
		return nil, err
	}

	list := &List{Path: path, Encoding: encName}
	if looksLikeSubtlex(path, text) {
		corpus, err := ParseSubtlex(text)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		list.Format = FormatSubtlex
		list.Words = corpus.Words
		list.Counts = corpus.Counts
		return list, nil
	}

	list.Format = FormatPlain
	list.Words = splitWords(text)
	return list, nil
}

// LoadVocabulary reads the reference vocabulary: tab-separated with the word
// in the first column. Entries are folded to lower case; blank lines are
// skipped.
func LoadVocabulary(path, encodingLabel string) ([]string, error) {
	text, _, err := readText(path, encodingLabel)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(text, "\n") {
		field, _, _ := strings.Cut(line, "\t")
		if w := textutil.Fold(field); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

func readText(path, encodingLabel string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	text, name, err := Decode(data, encodingLabel)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, name, nil
}

func splitWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func looksLikeSubtlex(path, text string) bool {
	if strings.Contains(filepath.Base(path), "SUBTLEX") {
		return true
	}
	header, _, _ := strings.Cut(text, "\n")
	cols := strings.Split(strings.TrimRight(header, "\r"), "\t")
	seen := 0
	for _, col := range cols {
		switch strings.TrimSpace(col) {
		case ColumnWord, ColumnCount, ColumnSpellCheck:
			seen++
		}
	}
	return seen == 3
}
