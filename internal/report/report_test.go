package report

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gofrs/flock"

	"affixsplit/internal/affix"
)

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		4.1:  "4.1",
		3:    "3.0",
		6.38: "6.38",
		0.01: "0.01",
	}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "german_suffixes_with_frequency.txt")
	table := affix.Table{"chen": 4.1, "en": 6.38, "los": 3}

	if err := Write(path, table); err != nil {
		t.Fatalf("Write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "en:6.38\nchen:4.1\nlos:3.0\n"
	if string(raw) != want {
		t.Fatalf("unexpected report: got %q want %q", raw, want)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file to be kept, stat err = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Fatalf("unexpected round trip: got %v want %v", got, table)
	}
}

func TestWriteRefusesWhenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suffixes.txt")
	held := flock.New(path + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	if err := Write(path, affix.Table{"en": 1}); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestWriteReleasesLockForNextWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suffixes.txt")
	if err := Write(path, affix.Table{"en": 1}); err != nil {
		t.Fatalf("first Write: %v", err)
	}

	held := flock.New(path + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected lock to be free after Write: ok=%v err=%v", ok, err)
	}
	if err := Write(path, affix.Table{"er": 2}); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked while the kept lock file is held, got %v", err)
	}
	if err := held.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := Write(path, affix.Table{"er": 2}); err != nil {
		t.Fatalf("second Write: %v", err)
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("en:6.3\nnoseparator\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for malformed line")
	}
}
