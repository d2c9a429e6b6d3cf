package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
	"gorm.io/gorm"
)

// Submitter submits one parsed record to the store. Implementations cover
// the two supported transports: a direct database write and an HTTP call
// against a deployed instance.
type Submitter interface {
	Name() string
	SubmitTestimonial(ctx context.Context, t *model.Testimonial) error
	SubmitUniversity(ctx context.Context, u *model.University) error
}

// DirectSubmitter writes records straight into the database
type DirectSubmitter struct {
	db *gorm.DB
}

// NewDirectSubmitter creates a submitter over a live GORM connection
func NewDirectSubmitter(db *gorm.DB) *DirectSubmitter {
	return &DirectSubmitter{db: db}
}

func (s *DirectSubmitter) Name() string { return "direct" }

func (s *DirectSubmitter) SubmitTestimonial(ctx context.Context, t *model.Testimonial) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *DirectSubmitter) SubmitUniversity(ctx context.Context, u *model.University) error {
	return s.db.WithContext(ctx).Create(u).Error
}

// APISubmitter posts records to a deployed API instance using an admin token
type APISubmitter struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewAPISubmitter creates a submitter that talks to baseURL
func NewAPISubmitter(baseURL, token string) *APISubmitter {
	return &APISubmitter{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *APISubmitter) Name() string { return "api" }

func (s *APISubmitter) SubmitTestimonial(ctx context.Context, t *model.Testimonial) error {
	return s.post(ctx, "/api/v1/testimonials", t)
}

func (s *APISubmitter) SubmitUniversity(ctx context.Context, u *model.University) error {
	// The API only exposes bulk insert for universities
	body := map[string]interface{}{
		"universities": []*model.University{u},
	}
	return s.post(ctx, "/api/v1/universities/bulk", body)
}

func (s *APISubmitter) post(ctx context.Context, path string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
