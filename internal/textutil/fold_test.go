package textutil

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace", "  \t", ""},
		{"ascii", "Kindergarten", "kindergarten"},
		{"umlaut", "HÄUSER", "häuser"},
		{"decomposed umlaut", "Häuser", "häuser"},
		{"sharp s kept", "Straße", "straße"},
		{"trimmed", " Laufen\r", "laufen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasUpperInitial(t *testing.T) {
	tests := map[string]bool{
		"Haus":   true,
		"Ärger":  true,
		"laufen": false,
		"":       false,
		"1a":     false,
	}
	for in, want := range tests {
		if got := HasUpperInitial(in); got != want {
			t.Errorf("HasUpperInitial(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("häu"); got != 3 {
		t.Fatalf("RuneLen = %d, want 3", got)
	}
}
