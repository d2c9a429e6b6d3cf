package services

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Daily Digest 2026-08-30", "daily-digest-2026-08-30"},
		{"Germany's New Visa Rules!", "germany-s-new-visa-rules"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEstimateReadingTime(t *testing.T) {
	if got := EstimateReadingTime(""); got != 1 {
		t.Errorf("empty content = %d, want minimum of 1", got)
	}
	if got := EstimateReadingTime("short note"); got != 1 {
		t.Errorf("short content = %d, want 1", got)
	}

	// 450 words at 200wpm rounds up to 3 minutes
	long := strings.Repeat("word ", 450)
	if got := EstimateReadingTime(long); got != 3 {
		t.Errorf("450 words = %d minutes, want 3", got)
	}
}

func TestPickCategory(t *testing.T) {
	tests := []struct {
		categories []string
		want       string
	}{
		{[]string{"visa", "education"}, "visa"},
		{[]string{"Sports", "education"}, "education"},
		{[]string{"Visa"}, "visa"}, // case-folded before matching
		{[]string{"sports"}, "immigration"},
		{nil, "immigration"},
	}

	for _, tt := range tests {
		if got := pickCategory(tt.categories); got != tt.want {
			t.Errorf("pickCategory(%v) = %q, want %q", tt.categories, got, tt.want)
		}
	}
}
