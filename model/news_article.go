package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// News article categories (closed set).
const (
	CategoryImmigration = "immigration"
	CategoryEducation   = "education"
	CategoryVisa        = "visa"
	CategoryCareer      = "career"
	CategorySuccess     = "success"
	CategoryCulture     = "culture"
)

// News article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// NewsCategories lists every valid article category.
var NewsCategories = []string{
	CategoryImmigration,
	CategoryEducation,
	CategoryVisa,
	CategoryCareer,
	CategorySuccess,
	CategoryCulture,
}

// IsValidCategory reports whether c is a member of the closed category set.
func IsValidCategory(c string) bool {
	for _, v := range NewsCategories {
		if v == c {
			return true
		}
	}
	return false
}

// NewsSource is a single source citation attached to an article.
type NewsSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsArticle represents a news/blog entry. Articles are created either by
// the AI digest pipeline or by manual admin entry. Only articles with
// Status=published and IsActive=true are publicly queryable.
type NewsArticle struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(500);not null" json:"title" validate:"required,min=3,max=500"`
	Slug     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Summary  string `gorm:"type:text" json:"summary"`
	Content  string `gorm:"type:text" json:"content"` // markdown
	Category string `gorm:"type:varchar(50);index;not null" json:"category" validate:"oneof=immigration education visa career success culture"`
	Status   string `gorm:"type:varchar(20);index;default:draft" json:"status" validate:"oneof=draft published"`

	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	KeyTakeaways  pq.StringArray `gorm:"type:text[]" json:"key_takeaways"`
	Sources       datatypes.JSON `gorm:"type:jsonb" json:"sources"`
	FeaturedImage string         `gorm:"type:varchar(512)" json:"featured_image,omitempty"`

	ReadingTime int        `json:"reading_time"` // minutes
	GeneratedAt time.Time  `gorm:"not null" json:"generated_at"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	IsActive  bool           `gorm:"index;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for NewsArticle
func (NewsArticle) TableName() string {
	return "news_articles"
}
