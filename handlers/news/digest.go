package news

import (
	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
)

// GenerateDigest handles POST /api/v1/news/digest
// Runs the daily digest pipeline immediately instead of waiting for the
// scheduled run. The call is synchronous and can take a couple of minutes.
func (h *NewsHandler) GenerateDigest(c *fiber.Ctx) error {
	if h.digest == nil {
		return response.ServiceUnavailable(c, "Digest generation is not configured")
	}

	article, err := h.digest.Run(c.Context())
	if err != nil {
		return response.ErrorWithDetails(c, fiber.StatusBadGateway,
			"Digest generation failed", "DIGEST_FAILED", err.Error())
	}

	return response.Created(c, article)
}
