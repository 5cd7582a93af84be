package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDecodeDetectsEncodings(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantText string
		wantEnc  string
	}{
		{"utf8", []byte("Häuser"), "Häuser", "utf-8"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("Häuser")...), "Häuser", "utf-8"},
		{"latin1", []byte{'H', 0xE4, 'u', 's', 'e', 'r'}, "Häuser", "windows-1252"},
		{"utf16le bom", []byte{0xFF, 0xFE, 'H', 0, 0xE4, 0}, "Hä", "utf-16le"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := Decode(tt.data, AutoEncoding)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if text != tt.wantText {
				t.Fatalf("unexpected text: got %q want %q", text, tt.wantText)
			}
			if enc != tt.wantEnc {
				t.Fatalf("unexpected encoding: got %q want %q", enc, tt.wantEnc)
			}
		})
	}
}

func TestDecodeExplicitLabel(t *testing.T) {
	text, _, err := Decode([]byte{0xDF}, "latin1")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "ß" {
		t.Fatalf("unexpected text: got %q want %q", text, "ß")
	}
	if _, _, err := Decode([]byte("x"), "no-such-charset"); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestLoadPlainList(t *testing.T) {
	path := writeFile(t, "words.txt", []byte("laufen\r\n\nHäuser\n  Kindergarten \n"))
	list, err := Load(path, AutoEncoding)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list.Format != FormatPlain {
		t.Fatalf("unexpected format: %q", list.Format)
	}
	want := []string{"laufen", "Häuser", "Kindergarten"}
	if !reflect.DeepEqual(list.Words, want) {
		t.Fatalf("unexpected words: got %q want %q", list.Words, want)
	}
	if list.Counts != nil {
		t.Fatalf("plain list should carry no counts, got %v", list.Counts)
	}
}

const subtlexSample = "Word\tWFfreqcount\tspell-check OK (1/0)\tlgSUBTLEX\n" +
	"Haus\t120\t1\t2.1\n" +
	"haus\t30\t1\t1.5\n" +
	"Hauss\t4\t0\t0.7\n" +
	"laufen\t80\t1\t1.9\n"

func TestLoadSubtlexByHeader(t *testing.T) {
	path := writeFile(t, "frequencies.tsv", []byte(subtlexSample))
	list, err := Load(path, AutoEncoding)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list.Format != FormatSubtlex {
		t.Fatalf("unexpected format: %q", list.Format)
	}
	want := []string{"Haus", "haus", "laufen"}
	if !reflect.DeepEqual(list.Words, want) {
		t.Fatalf("unexpected words: got %q want %q", list.Words, want)
	}
	if got := list.Counts["haus"]; got != 150 {
		t.Fatalf("unexpected count for haus: got %d want 150", got)
	}
	if got := list.Counts["hauss"]; got != 4 {
		t.Fatalf("unchecked rows should still count: got %d want 4", got)
	}
}

func TestLoadSubtlexByNameRequiresColumns(t *testing.T) {
	path := writeFile(t, "SUBTLEX-DE.txt", []byte("Word\tcount\nHaus\t3\n"))
	_, err := Load(path, AutoEncoding)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParseSubtlexRejectsNonIntegerCount(t *testing.T) {
	text := "Word\tWFfreqcount\tspell-check OK (1/0)\nHaus\t1.5\t1\n"
	if _, err := ParseSubtlex(text); err == nil {
		t.Fatal("expected error for non-integer count")
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := writeFile(t, "vocab.tsv", []byte("Kinder\tNN\ngarten\n\nGARTEN\t\n"))
	words, err := LoadVocabulary(path, AutoEncoding)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	want := []string{"kinder", "garten", "garten"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("unexpected vocabulary: got %q want %q", words, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), AutoEncoding)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWriteWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "words.txt")
	if err := WriteWords(path, []string{"Haus", "laufen"}); err != nil {
		t.Fatalf("WriteWords: %v", err)
	}
	list, err := Load(path, AutoEncoding)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(list.Words, []string{"Haus", "laufen"}) {
		t.Fatalf("unexpected round trip: %q", list.Words)
	}
}
