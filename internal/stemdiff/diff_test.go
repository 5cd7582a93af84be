package stemdiff

import (
	"errors"
	"reflect"
	"testing"
)

func TestDiffUnchangedStemYieldsEmptySuffix(t *testing.T) {
	for _, w := range []string{"haus", "und", "garten"} {
		c := Diff(w, w)
		if c.Outcome != Clean || c.Suffix != "" {
			t.Fatalf("Diff(%q, %q) = %+v, want clean empty suffix", w, w, c)
		}
		if c.Accepted() {
			t.Fatalf("empty suffix must not be accepted")
		}
	}
}

func TestDiffPrefixStemYieldsTrailingSubstring(t *testing.T) {
	tests := []struct {
		word, stem, want string
	}{
		{"laufen", "lauf", "en"},
		{"Kinder", "kind", "er"},
		{"Freiheiten", "freiheit", "en"},
		{"a", "", "a"},
	}
	for _, tt := range tests {
		c := Diff(tt.word, tt.stem)
		if c.Outcome != Clean {
			t.Fatalf("Diff(%q, %q): unexpected outcome %s", tt.word, tt.stem, c.Outcome)
		}
		if c.Suffix != tt.want {
			t.Fatalf("unexpected suffix: got %q want %q", c.Suffix, tt.want)
		}
		if !c.Accepted() {
			t.Fatalf("suffix %q should be accepted", c.Suffix)
		}
	}
}

func TestDiffStemGrew(t *testing.T) {
	c := Diff("häuser", "haus")
	if c.Outcome != StemGrew {
		t.Fatalf("unexpected outcome: got %s want %s", c.Outcome, StemGrew)
	}
	if c.Suffix != "" || c.Accepted() {
		t.Fatalf("stem-grew candidate must not carry a suffix: %+v", c)
	}
	want := []string{"-ä", "+a", "-e", "-r"}
	if !reflect.DeepEqual(c.Markers, want) {
		t.Fatalf("unexpected markers: got %q want %q", c.Markers, want)
	}
}

func TestDiffReplaceShorterSideFirst(t *testing.T) {
	c := Diff("xab", "yzab")
	want := []string{"-x", "+y", "+z"}
	if !reflect.DeepEqual(c.Markers, want) {
		t.Fatalf("unexpected markers: got %q want %q", c.Markers, want)
	}

	c = Diff("xyab", "zab")
	want = []string{"+z", "-x", "-y"}
	if !reflect.DeepEqual(c.Markers, want) {
		t.Fatalf("unexpected markers: got %q want %q", c.Markers, want)
	}
}

func TestExtract(t *testing.T) {
	got, err := Extract([]string{"laufen", "Haus"}, []string{"lauf", "haus"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 || got[0].Suffix != "en" || got[1].Suffix != "" {
		t.Fatalf("unexpected candidates: %+v", got)
	}
}

func TestExtractLengthMismatch(t *testing.T) {
	_, err := Extract([]string{"a", "b"}, []string{"a"})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestOutcomeString(t *testing.T) {
	if Clean.String() != "clean" || StemGrew.String() != "stem_grew" {
		t.Fatalf("unexpected outcome names: %s %s", Clean, StemGrew)
	}
}
