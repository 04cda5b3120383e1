package preprocess

import (
	"strings"
	"testing"
)

func TestRemoveLinks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"see [the docs](https://example.com/docs) here", "see the docs here"},
		{"raw https://example.com/page link", "raw  link"},
		{"www.example.com leads", " leads"},
		{"no links at all", "no links at all"},
	}

	for _, tt := range tests {
		if got := RemoveLinks(tt.input); got != tt.want {
			t.Errorf("RemoveLinks(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFlattenStripsMarkup(t *testing.T) {
	input := "# Heading\n\nSome **bold** and _quiet_ words.\n\n- warmth\n- calm"
	got := Flatten(input)

	for _, fragment := range []string{"#", "**", "<", ">"} {
		if strings.Contains(got, fragment) {
			t.Errorf("Flatten output still contains %q: %q", fragment, got)
		}
	}
	for _, word := range []string{"Heading", "bold", "quiet", "warmth", "calm"} {
		if !strings.Contains(got, word) {
			t.Errorf("Flatten dropped %q: %q", word, got)
		}
	}
}

func TestFlattenNormalizesWhitespace(t *testing.T) {
	got := Flatten("a   lot\n\n\nof    space")
	if strings.Contains(got, "  ") {
		t.Errorf("Flatten left doubled whitespace: %q", got)
	}
}
