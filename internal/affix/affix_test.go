package affix

import (
	"reflect"
	"slices"
	"testing"

	"affixsplit/internal/stemdiff"
	"affixsplit/internal/stemmer"
)

type mapScorer map[string]float64

func (m mapScorer) Zipf(word string) float64 { return m[word] }

func TestManualSuffixes(t *testing.T) {
	list := ManualSuffixes()
	if len(list) != 58 {
		t.Fatalf("unexpected manual suffix count: got %d want 58", len(list))
	}
	if !slices.Contains(list, "chen") || !slices.Contains(list, "würdig") {
		t.Fatalf("manual list missing expected entries: %q", list)
	}
	list[0] = "mutated"
	if ManualSuffixes()[0] != "chen" {
		t.Fatal("ManualSuffixes must return a copy")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		segs    stemmer.Segments
		wantPos Position
		want    string
	}{
		{stemmer.Segments{"lauf", "en"}, Suffix, "en"},
		{stemmer.Segments{"un", "glück"}, Prefix, "un"},
		{stemmer.Segments{"häu", "ser"}, None, ""},
		{stemmer.Segments{"haus"}, None, ""},
		{nil, None, ""},
		{stemmer.Segments{"ähn", "lich"}, Prefix, "ähn"},
	}
	for _, tt := range tests {
		pos, got := Classify(tt.segs)
		if pos != tt.wantPos || got != tt.want {
			t.Errorf("Classify(%q) = (%s, %q), want (%s, %q)", tt.segs, pos, got, tt.wantPos, tt.want)
		}
	}
}

func TestCollectorMergesSources(t *testing.T) {
	c := NewCollector()
	c.AddSegments([]stemmer.Segments{{"lauf", "en"}, {"kind", "er"}, {"un", "glück"}, {"häu", "ser"}})
	c.AddDiff([]stemdiff.Candidate{
		{Outcome: stemdiff.Clean, Suffix: "en"},
		{Outcome: stemdiff.Clean, Suffix: ""},
		{Outcome: stemdiff.StemGrew, Markers: []string{"-ä", "+a"}},
		{Outcome: stemdiff.Clean, Suffix: "ung"},
	})
	c.AddSuffixes([]string{"chen", "zzqx", ""})

	if got, want := c.Suffixes(), []string{"chen", "en", "er", "ung", "zzqx"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected suffixes: got %q want %q", got, want)
	}
	if got, want := c.Prefixes(), []string{"un"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected prefixes: got %q want %q", got, want)
	}
}

func TestRankDropsZeroScores(t *testing.T) {
	c := NewCollector()
	c.AddSuffixes(ManualSuffixes())
	c.AddSuffixes([]string{"zzqx"})
	c.AddSegments([]stemmer.Segments{{"un", "glück"}, {"ur", "sprung"}})

	scorer := mapScorer{"chen": 4.1, "lein": 3.2, "un": 2.5}
	suffixes, prefixes := c.Rank(scorer)

	if _, ok := suffixes["chen"]; !ok {
		t.Fatal("expected chen in suffix table")
	}
	if _, ok := suffixes["zzqx"]; ok {
		t.Fatal("zero-scored zzqx must be absent")
	}
	for affix, score := range suffixes {
		if score <= 0 {
			t.Fatalf("table contains non-positive score for %q", affix)
		}
	}
	if len(suffixes) != 2 {
		t.Fatalf("unexpected suffix table: %v", suffixes)
	}
	if want := (Table{"un": 2.5}); !reflect.DeepEqual(prefixes, want) {
		t.Fatalf("unexpected prefix table: got %v want %v", prefixes, want)
	}
}

func TestRankIsIdempotent(t *testing.T) {
	build := func() Table {
		c := NewCollector()
		c.AddSuffixes(ManualSuffixes())
		c.AddSegments([]stemmer.Segments{{"lauf", "en"}})
		s, _ := c.Rank(mapScorer{"chen": 4.1, "en": 6.3, "los": 3})
		return s
	}
	if a, b := build().Keys(), build().Keys(); !reflect.DeepEqual(a, b) {
		t.Fatalf("key sets differ between runs: %q vs %q", a, b)
	}
}

func TestTableSorted(t *testing.T) {
	table := Table{"en": 6.3, "chen": 4.1, "lein": 4.1, "los": 5}
	got := table.Sorted()
	want := []Entry{{"en", 6.3}, {"los", 5}, {"chen", 4.1}, {"lein", 4.1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: got %v want %v", got, want)
	}
	if !reflect.DeepEqual(FromEntries(got), table) {
		t.Fatal("FromEntries should rebuild the table")
	}
}
