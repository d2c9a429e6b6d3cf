package importer

import "testing"

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"⭐⭐⭐⭐⭐", 5},
		{"⭐⭐⭐⭐", 4},
		{"★★★", 3},
		{"⭐", 1},
		{"", 0},
		{"great service", 0},
		{"⭐⭐⭐⭐⭐⭐⭐", 5}, // over-starred cells cap at 5
		{"4 stars ⭐⭐⭐⭐", 4},
	}

	for _, tt := range tests {
		if got := ParseRating(tt.raw); got != tt.want {
			t.Errorf("ParseRating(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestCountryFlag(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"Germany", "🇩🇪"},
		{"germany", "🇩🇪"},
		{"  Canada  ", "🇨🇦"},
		{"United Kingdom", "🇬🇧"},
		{"UK", "🇬🇧"},
		{"Dubai", "🇦🇪"},
		{"Atlantis", GlobeFlag},
		{"", GlobeFlag},
	}

	for _, tt := range tests {
		if got := CountryFlag(tt.country); got != tt.want {
			t.Errorf("CountryFlag(%q) = %q, want %q", tt.country, got, tt.want)
		}
	}
}

func TestNormalizeService(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Job Seeker Visa", "Job Visa"},
		{"Work Visa Assistance", "Job Visa"},
		{"Study in Germany", "Study Abroad"}, // study keyword wins over german
		{"Masters Education", "Study Abroad"},
		{"Study Abroad Counselling", "Study Abroad"},
		{"Opportunity Card", "PR Consulting"},
		{"German PR", "PR Consulting"},
		{"", "PR Consulting"},
		{"something else", "PR Consulting"},
	}

	for _, tt := range tests {
		if got := NormalizeService(tt.raw); got != tt.want {
			t.Errorf("NormalizeService(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCleanReview(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Great experience"`, "Great experience"},
		{"“Smooth process”", "Smooth process"},
		{"  plain text  ", "plain text"},
		{`""`, ""},
	}

	for _, tt := range tests {
		if got := CleanReview(tt.raw); got != tt.want {
			t.Errorf("CleanReview(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"Yes", "yes", "Y", "TRUE", "1", "Available", " yes "}
	for _, s := range truthy {
		if !ParseBool(s) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}

	falsy := []string{"No", "n", "false", "0", "", "maybe"}
	for _, s := range falsy {
		if ParseBool(s) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
}

func TestTestimonialFromRow(t *testing.T) {
	r := map[string]string{
		"NAME":              "Asha Rao",
		"COUNTRY":           "Germany",
		"RATING":            "⭐⭐⭐⭐",
		"REVIEW":            `"The team handled my Opportunity Card application end to end."`,
		"ACHIEVEMENT":       "Opportunity Card approved",
		"TIME FRAME OR AGE": "6 months",
		"SERVICE":           "Opportunity Card",
	}

	got := TestimonialFromRow(r)

	if got.Name != "Asha Rao" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Flag != "🇩🇪" {
		t.Errorf("Flag = %q, want 🇩🇪", got.Flag)
	}
	if got.Rating != 4 {
		t.Errorf("Rating = %d, want 4", got.Rating)
	}
	if got.Review != "The team handled my Opportunity Card application end to end." {
		t.Errorf("Review not cleaned: %q", got.Review)
	}
	if got.Service != "PR Consulting" {
		t.Errorf("Service = %q, want PR Consulting", got.Service)
	}
	if !got.IsActive {
		t.Error("imported testimonials should be active")
	}
}
