package testimonial

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/services/spaces"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"github.com/indiansabroad/indians-abroad-api/utils/validation"
	"gorm.io/gorm"
)

// TestimonialHandler handles testimonial-related requests
type TestimonialHandler struct {
	db        *gorm.DB
	spaces    *spaces.Client
	validator *validation.Validator
}

// NewTestimonialHandler creates a new testimonial handler. The Spaces client
// may be nil; photo/document uploads then return 503.
func NewTestimonialHandler(db *gorm.DB, spacesClient *spaces.Client) *TestimonialHandler {
	return &TestimonialHandler{
		db:        db,
		spaces:    spacesClient,
		validator: validation.NewValidator(),
	}
}

// CreateTestimonialRequest represents the request body for creating a testimonial
type CreateTestimonialRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Country     string `json:"country" validate:"required,max=100"`
	Flag        string `json:"flag" validate:"max=16"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Review      string `json:"review"`
	Achievement string `json:"achievement" validate:"max=255"`
	Timeframe   string `json:"timeframe" validate:"max=100"`
	Service     string `json:"service" validate:"oneof='PR Consulting' 'Job Visa' 'Study Abroad'"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url,max=512"`
}

// UpdateTestimonialRequest represents a partial patch; nil fields are left untouched
type UpdateTestimonialRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Flag        *string `json:"flag" validate:"omitempty,max=16"`
	Rating      *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Review      *string `json:"review"`
	Achievement *string `json:"achievement" validate:"omitempty,max=255"`
	Timeframe   *string `json:"timeframe" validate:"omitempty,max=100"`
	Service     *string `json:"service" validate:"omitempty,oneof='PR Consulting' 'Job Visa' 'Study Abroad'"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url,max=512"`
	IsActive    *bool   `json:"is_active"`
}

// listQuery scopes a query to publicly visible testimonials with the
// optional listing filters applied. Deactivated records never appear.
func listQuery(db *gorm.DB, service, country string, minRating int) *gorm.DB {
	query := db.Model(&model.Testimonial{}).Where("is_active = ?", true)

	if service != "" {
		query = query.Where("service = ?", service)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}
	if minRating > 0 {
		query = query.Where("rating >= ?", minRating)
	}
	return query
}

// ListTestimonials handles GET /api/v1/testimonials
func (h *TestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	service := c.Query("service", "")
	country := c.Query("country", "")
	minRating, _ := strconv.Atoi(c.Query("min_rating", "0"))

	var testimonials []model.Testimonial
	if err := listQuery(h.db, service, country, minRating).Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, testimonials)
}

// GetTestimonial handles GET /api/v1/testimonials/:id
func (h *TestimonialHandler) GetTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.Testimonial
	if err := h.db.Where("is_active = ?", true).First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	return response.Success(c, testimonial)
}

// CreateTestimonial handles POST /api/v1/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial := model.Testimonial{
		Name:        validation.SanitizeString(req.Name),
		Country:     validation.SanitizeString(req.Country),
		Flag:        req.Flag,
		Rating:      req.Rating,
		Review:      validation.SanitizeString(req.Review),
		Achievement: validation.SanitizeString(req.Achievement),
		Timeframe:   validation.SanitizeString(req.Timeframe),
		Service:     req.Service,
		PhotoURL:    req.PhotoURL,
		IsActive:    true,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to create testimonial")
	}

	return response.Created(c, testimonial)
}

// UpdateTestimonial handles PATCH /api/v1/testimonials/:id
// Deactivation happens here via is_active; records are never hard-deleted.
func (h *TestimonialHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	if req.Name != nil {
		testimonial.Name = validation.SanitizeString(*req.Name)
	}
	if req.Country != nil {
		testimonial.Country = validation.SanitizeString(*req.Country)
	}
	if req.Flag != nil {
		testimonial.Flag = *req.Flag
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Review != nil {
		testimonial.Review = validation.SanitizeString(*req.Review)
	}
	if req.Achievement != nil {
		testimonial.Achievement = validation.SanitizeString(*req.Achievement)
	}
	if req.Timeframe != nil {
		testimonial.Timeframe = validation.SanitizeString(*req.Timeframe)
	}
	if req.Service != nil {
		testimonial.Service = *req.Service
	}
	if req.PhotoURL != nil {
		// Direct URLs supersede the legacy storage id
		testimonial.PhotoURL = *req.PhotoURL
		testimonial.PhotoFileID = ""
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := h.db.Save(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to update testimonial")
	}

	return response.SuccessWithMessage(c, "Testimonial updated successfully", testimonial)
}
