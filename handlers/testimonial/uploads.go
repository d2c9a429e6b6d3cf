package testimonial

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/services/spaces"
	"github.com/indiansabroad/indians-abroad-api/utils/pdfvalidation"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"gorm.io/gorm"
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadPhoto handles POST /api/v1/testimonials/:id/photo
// A successful upload replaces any legacy file-id reference with the URL.
func (h *TestimonialHandler) UploadPhoto(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "Media storage is not configured")
	}

	id := c.Params("id")

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "Missing photo file")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedPhotoTypes[contentType] {
		return response.BadRequest(c, "Photo must be JPEG, PNG, or WebP")
	}
	if file.Size > 5*1024*1024 {
		return response.BadRequest(c, "Photo must be smaller than 5MB")
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read photo")
	}
	defer src.Close()

	key := spaces.PhotoKey(testimonial.ID, file.Filename)
	url, err := h.spaces.UploadFile(c.Context(), key, src, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to upload photo")
	}

	testimonial.PhotoURL = url
	testimonial.PhotoFileID = ""

	if err := h.db.Save(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to save photo URL")
	}

	return response.SuccessWithMessage(c, "Photo uploaded successfully", testimonial)
}

// UploadDocument handles POST /api/v1/testimonials/:id/documents
// Supporting documents (offer letters, visa grants) are validated as PDFs
// before upload and appended to the testimonial's document list.
func (h *TestimonialHandler) UploadDocument(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "Media storage is not configured")
	}

	id := c.Params("id")

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	file, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "Missing document file")
	}

	result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.SupportingDocumentLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to validate document")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read document")
	}
	defer src.Close()

	key := spaces.DocumentKey(testimonial.ID, file.Filename)
	url, err := h.spaces.UploadFile(c.Context(), key, src, "application/pdf")
	if err != nil {
		return response.InternalServerError(c, "Failed to upload document")
	}

	testimonial.Documents = append(testimonial.Documents, url)
	docType := strings.TrimSpace(c.FormValue("document_type"))
	if docType != "" {
		testimonial.DocumentType = docType
	}

	if err := h.db.Save(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to save document reference")
	}

	return response.SuccessWithMessage(c, "Document uploaded successfully", testimonial)
}
