package model

import "testing"

func TestIsValidCategory(t *testing.T) {
	for _, c := range NewsCategories {
		if !IsValidCategory(c) {
			t.Errorf("category %q should be valid", c)
		}
	}

	for _, c := range []string{"", "sports", "Immigration", "IMMIGRATION"} {
		if IsValidCategory(c) {
			t.Errorf("category %q should be invalid", c)
		}
	}
}
