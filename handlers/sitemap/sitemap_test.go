package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/indiansabroad/indians-abroad-api/model"
)

func TestBuildSitemapStaticOnly(t *testing.T) {
	body, err := BuildSitemap("https://www.indiansabroad.in", nil)
	if err != nil {
		t.Fatalf("BuildSitemap: %v", err)
	}

	if !strings.HasPrefix(body, "<?xml") {
		t.Error("missing XML header")
	}
	if !strings.Contains(body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Error("missing sitemap namespace")
	}
	for _, route := range []string{"/about", "/services", "/destinations", "/success-stories", "/news", "/contact"} {
		if !strings.Contains(body, "<loc>https://www.indiansabroad.in"+route+"</loc>") {
			t.Errorf("missing static route %s", route)
		}
	}
	if !strings.Contains(body, "<priority>1.0</priority>") {
		t.Error("home page should carry priority 1.0")
	}
}

func TestBuildSitemapIncludesArticles(t *testing.T) {
	published := time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)
	articles := []model.NewsArticle{
		{
			Slug:        "daily-digest-2026-08-29",
			GeneratedAt: published,
			PublishedAt: &published,
		},
	}

	body, err := BuildSitemap("https://www.indiansabroad.in", articles)
	if err != nil {
		t.Fatalf("BuildSitemap: %v", err)
	}

	if !strings.Contains(body, "<loc>https://www.indiansabroad.in/news/daily-digest-2026-08-29</loc>") {
		t.Error("article URL missing from sitemap")
	}
	if !strings.Contains(body, "<lastmod>2026-08-29</lastmod>") {
		t.Error("article lastmod missing or wrong format")
	}
	if !strings.Contains(body, "<changefreq>monthly</changefreq>") {
		t.Error("article changefreq missing")
	}
}

func TestBuildSitemapUsesLatestModification(t *testing.T) {
	published := time.Date(2026, 8, 20, 7, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	articles := []model.NewsArticle{
		{
			Slug:        "edited-article",
			GeneratedAt: published,
			PublishedAt: &published,
		},
	}
	articles[0].UpdatedAt = updated

	body, err := BuildSitemap("https://www.indiansabroad.in", articles)
	if err != nil {
		t.Fatalf("BuildSitemap: %v", err)
	}
	if !strings.Contains(body, "<lastmod>2026-08-25</lastmod>") {
		t.Error("lastmod should reflect the later edit date")
	}
}
