package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/services/newsfetch"
	"github.com/indiansabroad/indians-abroad-api/services/openrouter"
	"gorm.io/gorm"
)

// wordsPerMinute is the reading speed used for reading-time estimates
const wordsPerMinute = 200

// DigestService runs the daily digest pipeline: gather source context,
// generate a structured digest through the LLM, persist it as a published
// news article.
type DigestService struct {
	db      *gorm.DB
	llm     *openrouter.Client
	fetcher *newsfetch.Fetcher
}

// NewDigestService creates a new digest service
func NewDigestService(db *gorm.DB, llm *openrouter.Client, fetcher *newsfetch.Fetcher) *DigestService {
	if fetcher == nil {
		fetcher = newsfetch.NewFetcher(nil)
	}
	return &DigestService{
		db:      db,
		llm:     llm,
		fetcher: fetcher,
	}
}

// Run executes the full pipeline once and returns the stored article
func (s *DigestService) Run(ctx context.Context) (*model.NewsArticle, error) {
	now := time.Now()

	prompt, err := s.fetcher.BuildPrompt(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build digest context: %w", err)
	}

	digest, err := s.llm.GenerateDigest(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("digest generation failed: %w", err)
	}

	article, err := s.saveDigest(digest, now)
	if err != nil {
		return nil, fmt.Errorf("failed to store digest article: %w", err)
	}

	log.Printf("Stored daily digest article %q (id=%d)", article.Title, article.ID)
	return article, nil
}

// saveDigest maps a generated digest onto a published NewsArticle
func (s *DigestService) saveDigest(d *openrouter.Digest, now time.Time) (*model.NewsArticle, error) {
	sources := make([]model.NewsSource, 0, len(newsfetch.DefaultSources))
	for _, src := range newsfetch.DefaultSources {
		sources = append(sources, model.NewsSource{Title: src.Name, URL: src.URL})
	}
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return nil, err
	}

	published := now
	article := &model.NewsArticle{
		Title:        d.Title,
		Slug:         Slugify(fmt.Sprintf("%s %s", d.Title, now.Format("2006-01-02"))),
		Summary:      d.Summary,
		Content:      d.Content,
		Category:     pickCategory(d.Categories),
		Status:       model.StatusPublished,
		Tags:         d.Tags,
		KeyTakeaways: d.KeyHighlights,
		Sources:      sourcesJSON,
		ReadingTime:  EstimateReadingTime(d.Content),
		GeneratedAt:  now,
		PublishedAt:  &published,
		IsActive:     true,
	}

	if err := s.db.Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// pickCategory returns the first valid category, defaulting to immigration
func pickCategory(categories []string) string {
	for _, c := range categories {
		if model.IsValidCategory(strings.ToLower(c)) {
			return strings.ToLower(c)
		}
	}
	return model.CategoryImmigration
}

// EstimateReadingTime returns the reading time in minutes, minimum 1
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a URL slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
