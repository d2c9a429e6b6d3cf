package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
)

const (
	siteName = "Indians Abroad"

	// PlaceholderImage is used when an article has no featured image
	PlaceholderImage = "https://www.indiansabroad.in/images/og-default.jpg"

	maxTitleLength       = 45
	truncatedTitleLength = 42
	maxDescLength        = 160
	summaryCutoff        = 140
	truncatedSummary     = 137
	maxTopicTags         = 3
)

// categorySuffixes maps article categories to title suffixes.
// Unknown categories fall back to "News".
var categorySuffixes = map[string]string{
	model.CategoryImmigration: "Immigration News",
	model.CategoryEducation:   "Education News",
	model.CategoryVisa:        "Visa Updates",
	model.CategoryCareer:      "Career News",
	model.CategorySuccess:     "Success Stories",
	model.CategoryCulture:     "Culture",
}

// Meta is the page metadata derived from an article
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategorySuffix returns the title suffix for a category
func CategorySuffix(category string) string {
	if suffix, ok := categorySuffixes[category]; ok {
		return suffix
	}
	return "News"
}

// PageTitle builds the browser/OG title for an article. Long titles are
// truncated so search results do not cut them mid-word count.
func PageTitle(title, category string) string {
	suffix := CategorySuffix(category)
	runes := []rune(title)
	if len(runes) > maxTitleLength {
		return fmt.Sprintf("%s... | %s", string(runes[:truncatedTitleLength]), suffix)
	}
	return fmt.Sprintf("%s | %s - %s", title, suffix, siteName)
}

// MetaDescription builds the meta description for an article. The result
// never exceeds 160 characters: if the topics suffix would push it over,
// only the (possibly truncated) summary is used.
func MetaDescription(summary string, tags []string) string {
	desc := summary
	runes := []rune(summary)
	if len(runes) > summaryCutoff {
		desc = string(runes[:truncatedSummary]) + "..."
	}

	if len(tags) == 0 {
		return desc
	}

	topics := tags
	if len(topics) > maxTopicTags {
		topics = topics[:maxTopicTags]
	}
	withTopics := fmt.Sprintf("%s | Topics: %s", desc, strings.Join(topics, ", "))

	if len([]rune(withTopics)) > maxDescLength {
		return desc
	}
	return withTopics
}

// Generate returns the page metadata for an article
func Generate(a model.NewsArticle) Meta {
	return Meta{
		Title:       PageTitle(a.Title, a.Category),
		Description: MetaDescription(a.Summary, a.Tags),
	}
}

// Organization is a schema.org Organization reference
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	Logo *Image `json:"logo,omitempty"`
}

// Image is a schema.org ImageObject reference
type Image struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// NewsArticleLD is the schema.org NewsArticle JSON-LD block for an article
type NewsArticleLD struct {
	Context       string       `json:"@context"`
	Type          string       `json:"@type"`
	Headline      string       `json:"headline"`
	Description   string       `json:"description"`
	Image         string       `json:"image"`
	DatePublished string       `json:"datePublished"`
	DateModified  string       `json:"dateModified"`
	Author        Organization `json:"author"`
	Publisher     Organization `json:"publisher"`
	MainEntity    string       `json:"mainEntityOfPage"`
	Keywords      string       `json:"keywords,omitempty"`
	Section       string       `json:"articleSection"`
	WordCount     int          `json:"wordCount"`
}

// WordCount counts whitespace-separated words in the article content
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// GenerateNewsArticleLD builds the JSON-LD structured data for an article.
// All absent optional fields take defaults: dates fall back to the
// generation time, the image falls back to the site placeholder.
func GenerateNewsArticleLD(a model.NewsArticle, baseURL string) NewsArticleLD {
	published := a.GeneratedAt
	if a.PublishedAt != nil {
		published = *a.PublishedAt
	}

	modified := a.UpdatedAt
	if modified.IsZero() {
		modified = a.GeneratedAt
	}

	image := a.FeaturedImage
	if image == "" {
		image = PlaceholderImage
	}

	return NewsArticleLD{
		Context:       "https://schema.org",
		Type:          "NewsArticle",
		Headline:      a.Title,
		Description:   MetaDescription(a.Summary, a.Tags),
		Image:         image,
		DatePublished: published.Format(time.RFC3339),
		DateModified:  modified.Format(time.RFC3339),
		Author: Organization{
			Type: "Organization",
			Name: siteName,
		},
		Publisher: Organization{
			Type: "Organization",
			Name: siteName,
			Logo: &Image{
				Type: "ImageObject",
				URL:  fmt.Sprintf("%s/images/logo.png", strings.TrimRight(baseURL, "/")),
			},
		},
		MainEntity: fmt.Sprintf("%s/news/%s", strings.TrimRight(baseURL, "/"), a.Slug),
		Keywords:   strings.Join(a.Tags, ", "),
		Section:    a.Category,
		WordCount:  WordCount(a.Content),
	}
}
