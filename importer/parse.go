package importer

import (
	"strings"
)

// GlobeFlag is returned for countries missing from the flag table
const GlobeFlag = "🌍"

// countryFlags is the fixed country→flag lookup used by the import sheets.
// Keys are lowercase; lookups are case-insensitive.
var countryFlags = map[string]string{
	"germany":        "🇩🇪",
	"canada":         "🇨🇦",
	"australia":      "🇦🇺",
	"usa":            "🇺🇸",
	"united states":  "🇺🇸",
	"uk":             "🇬🇧",
	"united kingdom": "🇬🇧",
	"ireland":        "🇮🇪",
	"netherlands":    "🇳🇱",
	"poland":         "🇵🇱",
	"portugal":       "🇵🇹",
	"malta":          "🇲🇹",
	"luxembourg":     "🇱🇺",
	"new zealand":    "🇳🇿",
	"singapore":      "🇸🇬",
	"uae":            "🇦🇪",
	"dubai":          "🇦🇪",
}

// ParseRating counts star glyphs in the raw rating cell, capped at 5.
// Zero stars parses as 0 (the record will then fail model validation).
func ParseRating(s string) int {
	count := strings.Count(s, "⭐") + strings.Count(s, "★")
	if count > 5 {
		return 5
	}
	return count
}

// CountryFlag returns the flag emoji for a country, or the generic globe
// glyph for countries not in the table.
func CountryFlag(country string) string {
	if flag, ok := countryFlags[strings.ToLower(strings.TrimSpace(country))]; ok {
		return flag
	}
	return GlobeFlag
}

// NormalizeService buckets the raw CSV service text into one of the three
// service categories by keyword, defaulting to PR Consulting.
func NormalizeService(raw string) string {
	s := strings.ToLower(raw)

	switch {
	case strings.Contains(s, "job") || strings.Contains(s, "visa"):
		return "Job Visa"
	case strings.Contains(s, "study") || strings.Contains(s, "education"):
		return "Study Abroad"
	case strings.Contains(s, "opportunity card") || strings.Contains(s, "german"):
		return "PR Consulting"
	default:
		return "PR Consulting"
	}
}

// CleanReview strips the surrounding quote marks sheet exports wrap review
// text in, plus outer whitespace.
func CleanReview(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, "“”") // curly quotes
	return strings.TrimSpace(s)
}

// ParseBool reads the scholarship-availability style CSV flags
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "available":
		return true
	default:
		return false
	}
}
