package news

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/services"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"github.com/indiansabroad/indians-abroad-api/utils/validation"
	"gorm.io/gorm"
)

// Public listing limits: default page size and hard cap.
const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// NewsHandler handles news article requests
type NewsHandler struct {
	db        *gorm.DB
	digest    *services.DigestService
	validator *validation.Validator
}

// NewNewsHandler creates a new news handler. The digest service may be nil;
// the manual digest trigger then returns 503.
func NewNewsHandler(db *gorm.DB, digest *services.DigestService) *NewsHandler {
	return &NewsHandler{
		db:        db,
		digest:    digest,
		validator: validation.NewValidator(),
	}
}

// CreateNewsRequest represents the request body for manual article entry
type CreateNewsRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=500"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content" validate:"required"`
	Category      string   `json:"category" validate:"oneof=immigration education visa career success culture"`
	Status        string   `json:"status" validate:"oneof=draft published"`
	Tags          []string `json:"tags"`
	KeyTakeaways  []string `json:"key_takeaways"`
	FeaturedImage string   `json:"featured_image" validate:"omitempty,url,max=512"`
}

// UpdateNewsRequest represents a partial patch; nil fields are left untouched
type UpdateNewsRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=3,max=500"`
	Summary       *string   `json:"summary"`
	Content       *string   `json:"content"`
	Category      *string   `json:"category" validate:"omitempty,oneof=immigration education visa career success culture"`
	Status        *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags          *[]string `json:"tags"`
	KeyTakeaways  *[]string `json:"key_takeaways"`
	FeaturedImage *string   `json:"featured_image" validate:"omitempty,url,max=512"`
	IsActive      *bool     `json:"is_active"`
}

// CategoryCount is one row of the per-category aggregation
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// publicQuery scopes a query to publicly visible articles
func publicQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.NewsArticle{}).
		Where("status = ? AND is_active = ?", model.StatusPublished, true)
}

// listLimit parses the limit query value. Absent, malformed, or
// out-of-range values fall back to the default; the cap only applies to
// values that are genuinely too large.
func listLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// ListNews handles GET /api/v1/news
// Published, active articles only; optional category filter and recency limit.
func (h *NewsHandler) ListNews(c *fiber.Ctx) error {
	category := c.Query("category", "")
	limit := listLimit(c.Query("limit", ""))

	query := publicQuery(h.db)
	if category != "" {
		if !model.IsValidCategory(category) {
			return response.BadRequest(c, "Unknown category")
		}
		query = query.Where("category = ?", category)
	}

	var articles []model.NewsArticle
	if err := query.Order("published_at DESC").Limit(limit).Find(&articles).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch news")
	}

	return response.Success(c, articles)
}

// GetCategoryCounts handles GET /api/v1/news/categories
func (h *NewsHandler) GetCategoryCounts(c *fiber.Ctx) error {
	var counts []CategoryCount
	err := publicQuery(h.db).
		Select("category, count(*) as count").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to aggregate categories")
	}

	return response.Success(c, counts)
}

// GetNewsBySlug handles GET /api/v1/news/:slug
func (h *NewsHandler) GetNewsBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var article model.NewsArticle
	if err := publicQuery(h.db).Where("slug = ?", slug).First(&article).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	return response.Success(c, article)
}

// CreateNews handles POST /api/v1/news (manual admin entry)
func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	var req CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	now := time.Now()
	article := model.NewsArticle{
		Title:         validation.SanitizeString(req.Title),
		Slug:          services.Slugify(req.Title),
		Summary:       validation.SanitizeString(req.Summary),
		Content:       req.Content,
		Category:      req.Category,
		Status:        req.Status,
		Tags:          req.Tags,
		KeyTakeaways:  req.KeyTakeaways,
		FeaturedImage: req.FeaturedImage,
		ReadingTime:   services.EstimateReadingTime(req.Content),
		GeneratedAt:   now,
		IsActive:      true,
	}
	if req.Status == model.StatusPublished {
		article.PublishedAt = &now
	}

	if err := h.db.Create(&article).Error; err != nil {
		return response.InternalServerError(c, "Failed to create article")
	}

	return response.Created(c, article)
}

// UpdateNews handles PATCH /api/v1/news/:id
// Articles are deactivated via is_active, never hard-deleted.
func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var article model.NewsArticle
	if err := h.db.First(&article, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	if req.Title != nil {
		article.Title = validation.SanitizeString(*req.Title)
	}
	if req.Summary != nil {
		article.Summary = validation.SanitizeString(*req.Summary)
	}
	if req.Content != nil {
		article.Content = *req.Content
		article.ReadingTime = services.EstimateReadingTime(*req.Content)
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Status != nil {
		// First transition to published stamps PublishedAt
		if *req.Status == model.StatusPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
		article.Status = *req.Status
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	if req.KeyTakeaways != nil {
		article.KeyTakeaways = *req.KeyTakeaways
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = *req.FeaturedImage
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := h.db.Save(&article).Error; err != nil {
		return response.InternalServerError(c, "Failed to update article")
	}

	return response.SuccessWithMessage(c, "Article updated successfully", article)
}
