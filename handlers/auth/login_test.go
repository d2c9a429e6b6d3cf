package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/utils/auth"
	"github.com/indiansabroad/indians-abroad-api/utils/middleware"
)

func newLoginApp(t *testing.T, password string) (*fiber.App, *auth.JWTManager) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "test",
	})

	app := fiber.New()
	handler := NewAuthHandler(hash, jwtManager, nil)
	app.Post("/api/v1/auth/login", handler.Login)
	return app, jwtManager
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestLoginIssuesValidToken(t *testing.T) {
	app, jwtManager := newLoginApp(t, "hunter2hunter2")

	resp := postLogin(t, app, `{"password":"hunter2hunter2"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Data.Token == "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	claims, err := jwtManager.ValidateToken(body.Data.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newLoginApp(t, "hunter2hunter2")

	resp := postLogin(t, app, `{"password":"wrong-password"}`)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginShortPasswordFailsValidation(t *testing.T) {
	app, _ := newLoginApp(t, "hunter2hunter2")

	resp := postLogin(t, app, `{"password":"short"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestLoginUnconfigured(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "s", Expiry: time.Hour, Issuer: "t"})
	app := fiber.New()
	app.Post("/api/v1/auth/login", NewAuthHandler("", jwtManager, nil).Login)

	resp := postLogin(t, app, `{"password":"whatever-long"}`)
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestAdminMiddlewareRejectsBadTokens(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "s", Expiry: time.Hour, Issuer: "t"})
	authMW := middleware.NewAuthMiddleware(jwtManager)

	app := fiber.New()
	app.Get("/admin", authMW.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// No Authorization header
	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", resp.StatusCode)
	}

	// Garbage token
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", resp.StatusCode)
	}

	// Valid token passes
	token, _, err := jwtManager.GenerateAdminToken()
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid token: status = %d, want 200", resp.StatusCode)
	}
}
