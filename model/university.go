package model

import (
	"time"

	"gorm.io/gorm"
)

// University represents an institution entry for study-abroad guidance.
// Names are intentionally not unique: bulk imports may create duplicates
// across runs and the listing surface tolerates them.
type University struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Name                 string         `gorm:"type:varchar(255);index;not null" json:"name" validate:"required,min=2,max=255"`
	Country              string         `gorm:"type:varchar(100);index;not null" json:"country" validate:"required,max=100"`
	PopularPrograms      string         `gorm:"type:text" json:"popular_programs"`
	TuitionFee           string         `gorm:"type:varchar(255)" json:"tuition_fee"`
	Duration             string         `gorm:"type:varchar(100)" json:"duration"`
	Website              string         `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`
	IntakeMonths         string         `gorm:"type:varchar(255)" json:"intake_months"`
	ScholarshipAvailable bool           `gorm:"default:false" json:"scholarship_available"`
	ScholarshipValue     string         `gorm:"type:varchar(255)" json:"scholarship_value"`
	IsActive             bool           `gorm:"index;default:true" json:"is_active"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for University
func (University) TableName() string {
	return "universities"
}
