package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestReadTestimonialSheet(t *testing.T) {
	csv := "NAME,COUNTRY,RATING,REVIEW,ACHIEVEMENT,TIME FRAME OR AGE,SERVICE\n" +
		"Asha Rao,Germany,⭐⭐⭐⭐,\"\"\"Very professional.\"\"\",Opportunity Card approved,6 months,Opportunity Card\n" +
		",,,,,,\n" + // blank row is skipped
		"Rohit Menon,Canada,⭐⭐⭐⭐⭐,Smooth study visa process,Admitted to Toronto,1 year,Study Abroad\n"

	path := writeTempCSV(t, "testimonials.csv", csv)

	got, err := ReadTestimonialSheet(path)
	if err != nil {
		t.Fatalf("ReadTestimonialSheet: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	if got[0].Name != "Asha Rao" || got[0].Flag != "🇩🇪" || got[0].Rating != 4 {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].Review != "Very professional." {
		t.Errorf("Review = %q, want quotes stripped", got[0].Review)
	}
	if got[1].Service != "Study Abroad" {
		t.Errorf("Service = %q, want Study Abroad", got[1].Service)
	}
	if got[1].Rating != 5 {
		t.Errorf("Rating = %d, want 5", got[1].Rating)
	}
}

func TestReadUniversitySheet(t *testing.T) {
	csv := "NAME,COUNTRY,POPULAR PROGRAMS,TUITION FEE,DURATION,WEBSITE,INTAKE MONTHS,SCHOLARSHIP AVAILABLE,SCHOLARSHIP VALUE\n" +
		"Technical University of Munich,Germany,\"CS, Engineering\",No tuition fee,2 years,https://www.tum.de,\"April, October\",Yes,Up to 100%\n"

	path := writeTempCSV(t, "universities.csv", csv)

	got, err := ReadUniversitySheet(path)
	if err != nil {
		t.Fatalf("ReadUniversitySheet: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	u := got[0]
	if u.Name != "Technical University of Munich" {
		t.Errorf("Name = %q", u.Name)
	}
	if !u.ScholarshipAvailable {
		t.Error("ScholarshipAvailable = false, want true")
	}
	if u.PopularPrograms != "CS, Engineering" {
		t.Errorf("PopularPrograms = %q", u.PopularPrograms)
	}
	if !u.IsActive {
		t.Error("imported universities should be active")
	}
}

func TestReadSheetNoDataRows(t *testing.T) {
	path := writeTempCSV(t, "empty.csv", "NAME,COUNTRY\n")
	if _, err := ReadTestimonialSheet(path); err == nil {
		t.Fatal("expected error for header-only CSV")
	}
}
