package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service categories offered by the consultancy. Every testimonial is
// bucketed into exactly one of these.
const (
	ServicePRConsulting = "PR Consulting"
	ServiceJobVisa      = "Job Visa"
	ServiceStudyAbroad  = "Study Abroad"
)

// Testimonial represents a client success story shown on the site.
// Records are never hard-deleted; IsActive=false hides them from all
// public listings.
type Testimonial struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=2,max=255"`
	Country     string `gorm:"type:varchar(100);index;not null" json:"country" validate:"required,max=100"`
	Flag        string `gorm:"type:varchar(16)" json:"flag"`
	Rating      int    `gorm:"not null;index" json:"rating" validate:"gte=1,lte=5"`
	Review      string `gorm:"type:text" json:"review"`
	Achievement string `gorm:"type:varchar(255)" json:"achievement"`
	Timeframe   string `gorm:"type:varchar(100)" json:"timeframe"`
	Service     string `gorm:"type:varchar(50);index;not null" json:"service" validate:"oneof='PR Consulting' 'Job Visa' 'Study Abroad'"`

	// At most one of PhotoFileID (legacy storage id) or PhotoURL is
	// meaningfully set. PhotoURL is preferred going forward; uploads
	// always produce URLs and clear the legacy id.
	PhotoFileID string `gorm:"type:varchar(255)" json:"photo_file_id,omitempty"`
	PhotoURL    string `gorm:"type:varchar(512)" json:"photo_url,omitempty"`

	Documents    pq.StringArray `gorm:"type:text[]" json:"documents,omitempty"`
	DocumentType string         `gorm:"type:varchar(50)" json:"document_type,omitempty"`

	IsActive  bool           `gorm:"index;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}
