package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/utils/auth"
	"github.com/indiansabroad/indians-abroad-api/utils/middleware"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"github.com/indiansabroad/indians-abroad-api/utils/validation"
)

// AuthHandler issues admin tokens for the content-management endpoints.
// There is a single admin principal whose bcrypt password hash comes from
// the environment; no user records exist.
type AuthHandler struct {
	passwordHash         string
	jwtManager           *auth.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(passwordHash string, jwtManager *auth.JWTManager, bfp *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		passwordHash:         passwordHash,
		jwtManager:           jwtManager,
		bruteForceProtection: bfp,
		validator:            validation.NewValidator(),
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the issued admin token
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.passwordHash == "" {
		return response.ServiceUnavailable(c, "Admin login is not configured")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if !auth.CheckPassword(req.Password, h.passwordHash) {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, c.IP())
		}
		return response.Unauthorized(c, "Invalid password")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.ResetAttempts(c, c.IP())
	}

	token, _, err := h.jwtManager.GenerateAdminToken()
	if err != nil {
		return response.InternalServerError(c, "Failed to issue token")
	}

	return response.Success(c, LoginResponse{Token: token})
}
