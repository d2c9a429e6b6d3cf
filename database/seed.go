package database

import (
	"fmt"
	"log"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds runs all seed functions
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedUniversities(); err != nil {
		return fmt.Errorf("failed to seed universities: %w", err)
	}

	if err := s.SeedTestimonials(); err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedUniversities creates sample universities
func (s *Seeder) SeedUniversities() error {
	var count int64
	if err := s.db.Model(&model.University{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Universities already exist, skipping...")
		return nil
	}

	universities := []model.University{
		{
			Name:                 "Technical University of Munich",
			Country:              "Germany",
			PopularPrograms:      "Engineering, Computer Science, Management",
			TuitionFee:           "No tuition (semester fee ~150 EUR)",
			Duration:             "2 years (MSc)",
			Website:              "https://www.tum.de",
			IntakeMonths:         "April, October",
			ScholarshipAvailable: true,
			ScholarshipValue:     "DAAD up to 934 EUR/month",
			IsActive:             true,
		},
		{
			Name:                 "University of Toronto",
			Country:              "Canada",
			PopularPrograms:      "Data Science, Business, Life Sciences",
			TuitionFee:           "CAD 45,000-60,000/year",
			Duration:             "1-2 years (Masters)",
			Website:              "https://www.utoronto.ca",
			IntakeMonths:         "January, September",
			ScholarshipAvailable: true,
			ScholarshipValue:     "Up to CAD 25,000",
			IsActive:             true,
		},
		{
			Name:                 "University of Melbourne",
			Country:              "Australia",
			PopularPrograms:      "IT, Public Health, Finance",
			TuitionFee:           "AUD 40,000-50,000/year",
			Duration:             "1.5-2 years (Masters)",
			Website:              "https://www.unimelb.edu.au",
			IntakeMonths:         "February, July",
			ScholarshipAvailable: false,
			IsActive:             true,
		},
	}

	if err := s.db.Create(&universities).Error; err != nil {
		return err
	}

	log.Printf("Created %d universities\n", len(universities))
	return nil
}

// SeedTestimonials creates sample testimonials
func (s *Seeder) SeedTestimonials() error {
	var count int64
	if err := s.db.Model(&model.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Testimonials already exist, skipping...")
		return nil
	}

	now := time.Now()
	testimonials := []model.Testimonial{
		{
			Name:        "Asha Rao",
			Country:     "Germany",
			Flag:        "🇩🇪",
			Rating:      5,
			Review:      "The Opportunity Card guidance was spot on. I landed interviews within weeks of arriving.",
			Achievement: "Job offer in Berlin",
			Timeframe:   "3 months",
			Service:     model.ServicePRConsulting,
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			Name:        "Rohit Menon",
			Country:     "Canada",
			Flag:        "🇨🇦",
			Rating:      4,
			Review:      "Clear, honest advice on the study permit process from start to finish.",
			Achievement: "MSc admission with scholarship",
			Timeframe:   "6 months",
			Service:     model.ServiceStudyAbroad,
			IsActive:    true,
			CreatedAt:   now,
		},
	}

	if err := s.db.Create(&testimonials).Error; err != nil {
		return err
	}

	log.Printf("Created %d testimonials\n", len(testimonials))
	return nil
}
