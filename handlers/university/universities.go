package university

import (
	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"github.com/indiansabroad/indians-abroad-api/utils/validation"
	"gorm.io/gorm"
)

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *gorm.DB) *UniversityHandler {
	return &UniversityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUniversityRequest represents one university record to insert
type CreateUniversityRequest struct {
	Name                 string `json:"name" validate:"required,min=2,max=255"`
	Country              string `json:"country" validate:"required,max=100"`
	PopularPrograms      string `json:"popular_programs"`
	TuitionFee           string `json:"tuition_fee" validate:"max=255"`
	Duration             string `json:"duration" validate:"max=100"`
	Website              string `json:"website" validate:"omitempty,url,max=255"`
	IntakeMonths         string `json:"intake_months" validate:"max=255"`
	ScholarshipAvailable bool   `json:"scholarship_available"`
	ScholarshipValue     string `json:"scholarship_value" validate:"max=255"`
}

// UpdateUniversityRequest represents a partial patch; nil fields are left untouched
type UpdateUniversityRequest struct {
	Name                 *string `json:"name" validate:"omitempty,min=2,max=255"`
	Country              *string `json:"country" validate:"omitempty,max=100"`
	PopularPrograms      *string `json:"popular_programs"`
	TuitionFee           *string `json:"tuition_fee" validate:"omitempty,max=255"`
	Duration             *string `json:"duration" validate:"omitempty,max=100"`
	Website              *string `json:"website" validate:"omitempty,url,max=255"`
	IntakeMonths         *string `json:"intake_months" validate:"omitempty,max=255"`
	ScholarshipAvailable *bool   `json:"scholarship_available"`
	ScholarshipValue     *string `json:"scholarship_value" validate:"omitempty,max=255"`
	IsActive             *bool   `json:"is_active"`
}

// BulkInsertRequest wraps the list of records for a bulk insert
type BulkInsertRequest struct {
	Universities []CreateUniversityRequest `json:"universities" validate:"required,min=1,dive"`
}

// BulkInsertResult reports the outcome of one record in a bulk insert.
// Inserts are not transactional across the batch: a failure partway leaves
// earlier inserts in place, so per-index results make partial failure
// recoverable without re-deriving state from logs.
type BulkInsertResult struct {
	Index int    `json:"index"`
	ID    uint   `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// listQuery scopes a query to active universities, optionally filtered to
// one country. Deactivated records never appear in public listings.
func listQuery(db *gorm.DB, country string) *gorm.DB {
	query := db.Model(&model.University{}).Where("is_active = ?", true)
	if country != "" {
		query = query.Where("country = ?", country)
	}
	return query
}

// countriesQuery builds the distinct-country aggregation over active rows
func countriesQuery(db *gorm.DB) *gorm.DB {
	return listQuery(db, "").
		Distinct("country").
		Order("country ASC")
}

// ListUniversities handles GET /api/v1/universities
// No pagination: the expected record count is tens to low hundreds.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	country := c.Query("country", "")

	var universities []model.University
	if err := listQuery(h.db, country).Order("name ASC").Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	return response.Success(c, universities)
}

// GetCountries handles GET /api/v1/universities/countries
// Returns the sorted set of distinct countries among active universities.
func (h *UniversityHandler) GetCountries(c *fiber.Ctx) error {
	var countries []string
	err := countriesQuery(h.db).Pluck("country", &countries).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch countries")
	}

	return response.Success(c, countries)
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	var university model.University
	if err := h.db.Where("is_active = ?", true).First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	return response.Success(c, university)
}

// BulkInsert handles POST /api/v1/universities/bulk
// Inserts each record with IsActive=true; a failed record does not abort
// the batch and does not roll back earlier inserts.
func (h *UniversityHandler) BulkInsert(c *fiber.Ctx) error {
	var req BulkInsertRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	results := make([]BulkInsertResult, 0, len(req.Universities))
	inserted := 0

	for i, item := range req.Universities {
		university := model.University{
			Name:                 validation.SanitizeString(item.Name),
			Country:              validation.SanitizeString(item.Country),
			PopularPrograms:      validation.SanitizeString(item.PopularPrograms),
			TuitionFee:           validation.SanitizeString(item.TuitionFee),
			Duration:             validation.SanitizeString(item.Duration),
			Website:              validation.SanitizeString(item.Website),
			IntakeMonths:         validation.SanitizeString(item.IntakeMonths),
			ScholarshipAvailable: item.ScholarshipAvailable,
			ScholarshipValue:     validation.SanitizeString(item.ScholarshipValue),
			IsActive:             true,
		}

		if err := h.db.Create(&university).Error; err != nil {
			results = append(results, BulkInsertResult{Index: i, Error: err.Error()})
			continue
		}

		results = append(results, BulkInsertResult{Index: i, ID: university.ID})
		inserted++
	}

	return response.SuccessWithMessage(c, "Bulk insert completed", fiber.Map{
		"inserted": inserted,
		"failed":   len(req.Universities) - inserted,
		"results":  results,
	})
}

// UpdateUniversity handles PATCH /api/v1/universities/:id
// Patches only the supplied fields; UpdatedAt is refreshed by GORM.
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var university model.University
	if err := h.db.First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	if req.Name != nil {
		university.Name = validation.SanitizeString(*req.Name)
	}
	if req.Country != nil {
		university.Country = validation.SanitizeString(*req.Country)
	}
	if req.PopularPrograms != nil {
		university.PopularPrograms = validation.SanitizeString(*req.PopularPrograms)
	}
	if req.TuitionFee != nil {
		university.TuitionFee = validation.SanitizeString(*req.TuitionFee)
	}
	if req.Duration != nil {
		university.Duration = validation.SanitizeString(*req.Duration)
	}
	if req.Website != nil {
		university.Website = validation.SanitizeString(*req.Website)
	}
	if req.IntakeMonths != nil {
		university.IntakeMonths = validation.SanitizeString(*req.IntakeMonths)
	}
	if req.ScholarshipAvailable != nil {
		university.ScholarshipAvailable = *req.ScholarshipAvailable
	}
	if req.ScholarshipValue != nil {
		university.ScholarshipValue = validation.SanitizeString(*req.ScholarshipValue)
	}
	if req.IsActive != nil {
		university.IsActive = *req.IsActive
	}

	if err := h.db.Save(&university).Error; err != nil {
		return response.InternalServerError(c, "Failed to update university")
	}

	return response.SuccessWithMessage(c, "University updated successfully", university)
}
