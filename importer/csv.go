package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/indiansabroad/indians-abroad-api/model"
)

// Testimonial sheet column headers
const (
	colName        = "NAME"
	colCountry     = "COUNTRY"
	colRating      = "RATING"
	colReview      = "REVIEW"
	colAchievement = "ACHIEVEMENT"
	colTimeframe   = "TIME FRAME OR AGE"
	colService     = "SERVICE"
)

// University sheet column headers
const (
	colUniName          = "NAME"
	colUniCountry       = "COUNTRY"
	colPrograms         = "POPULAR PROGRAMS"
	colTuition          = "TUITION FEE"
	colDuration         = "DURATION"
	colWebsite          = "WEBSITE"
	colIntake           = "INTAKE MONTHS"
	colScholarship      = "SCHOLARSHIP AVAILABLE"
	colScholarshipValue = "SCHOLARSHIP VALUE"
)

// row is one CSV record with header-keyed access
type row map[string]string

func readSheet(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // sheets often have ragged trailing columns
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	rows := make([]row, 0, len(records)-1)
	for _, rec := range records[1:] {
		r := make(row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				r[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// TestimonialFromRow converts one sheet row into a Testimonial record
func TestimonialFromRow(r map[string]string) model.Testimonial {
	country := r[colCountry]
	return model.Testimonial{
		Name:        r[colName],
		Country:     country,
		Flag:        CountryFlag(country),
		Rating:      ParseRating(r[colRating]),
		Review:      CleanReview(r[colReview]),
		Achievement: r[colAchievement],
		Timeframe:   r[colTimeframe],
		Service:     NormalizeService(r[colService]),
		IsActive:    true,
	}
}

// ReadTestimonialSheet parses the testimonial CSV into records ready to submit
func ReadTestimonialSheet(path string) ([]model.Testimonial, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	testimonials := make([]model.Testimonial, 0, len(rows))
	for _, r := range rows {
		if r[colName] == "" {
			continue // skip blank sheet rows
		}
		testimonials = append(testimonials, TestimonialFromRow(r))
	}
	return testimonials, nil
}

// UniversityFromRow converts one sheet row into a University record
func UniversityFromRow(r map[string]string) model.University {
	return model.University{
		Name:                 r[colUniName],
		Country:              r[colUniCountry],
		PopularPrograms:      r[colPrograms],
		TuitionFee:           r[colTuition],
		Duration:             r[colDuration],
		Website:              r[colWebsite],
		IntakeMonths:         r[colIntake],
		ScholarshipAvailable: ParseBool(r[colScholarship]),
		ScholarshipValue:     r[colScholarshipValue],
		IsActive:             true,
	}
}

// ReadUniversitySheet parses the university CSV into records ready to submit
func ReadUniversitySheet(path string) ([]model.University, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	universities := make([]model.University, 0, len(rows))
	for _, r := range rows {
		if r[colUniName] == "" {
			continue
		}
		universities = append(universities, UniversityFromRow(r))
	}
	return universities, nil
}
