package sitemap

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/model"
	"github.com/indiansabroad/indians-abroad-api/services/seo"
	"github.com/indiansabroad/indians-abroad-api/utils/cache"
	"github.com/indiansabroad/indians-abroad-api/utils/response"
	"gorm.io/gorm"
)

const (
	cacheKey = "sitemap:xml"
	cacheTTL = 15 * time.Minute
)

// staticRoutes are the fixed site pages always present in the sitemap
var staticRoutes = []string{
	"/",
	"/about",
	"/services",
	"/destinations",
	"/success-stories",
	"/news",
	"/contact",
}

// URL is a single sitemap entry
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// URLSet is the sitemap document root
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// SitemapHandler serves sitemap.xml and per-article JSON-LD blocks
type SitemapHandler struct {
	db      *gorm.DB
	cache   *cache.RedisCache
	baseURL string
}

// NewSitemapHandler creates a new sitemap handler. The cache may be nil.
func NewSitemapHandler(db *gorm.DB, redisCache *cache.RedisCache, baseURL string) *SitemapHandler {
	return &SitemapHandler{
		db:      db,
		cache:   redisCache,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetSitemap handles GET /sitemap.xml
// Serves static routes plus all published articles. A database failure is
// logged and the output silently degrades to static routes only.
func (h *SitemapHandler) GetSitemap(c *fiber.Ctx) error {
	c.Set("Content-Type", "application/xml; charset=utf-8")

	if h.cache != nil {
		if cached, err := h.cache.Get(c.Context(), cacheKey); err == nil {
			return c.SendString(cached)
		}
	}

	var articles []model.NewsArticle
	err := h.db.Model(&model.NewsArticle{}).
		Where("status = ? AND is_active = ?", model.StatusPublished, true).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		log.Printf("sitemap: article fetch failed, serving static routes only: %v", err)
		articles = nil
	}

	body, err := BuildSitemap(h.baseURL, articles)
	if err != nil {
		return response.InternalServerError(c, "Failed to build sitemap")
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Context(), cacheKey, body, cacheTTL); err != nil {
			log.Printf("sitemap: cache write failed: %v", err)
		}
	}

	return c.SendString(body)
}

// BuildSitemap renders the sitemap XML for the static routes and articles
func BuildSitemap(baseURL string, articles []model.NewsArticle) (string, error) {
	urls := make([]URL, 0, len(staticRoutes)+len(articles))

	for _, route := range staticRoutes {
		priority := "0.8"
		if route == "/" {
			priority = "1.0"
		}
		urls = append(urls, URL{
			Loc:        baseURL + route,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	for _, a := range articles {
		lastMod := a.GeneratedAt
		if a.PublishedAt != nil {
			lastMod = *a.PublishedAt
		}
		if a.UpdatedAt.After(lastMod) {
			lastMod = a.UpdatedAt
		}
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/news/%s", baseURL, a.Slug),
			LastMod:    lastMod.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	urlSet := URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(body), nil
}

// GetArticleJSONLD handles GET /api/v1/news/:slug/jsonld
func (h *SitemapHandler) GetArticleJSONLD(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var article model.NewsArticle
	err := h.db.Model(&model.NewsArticle{}).
		Where("slug = ? AND status = ? AND is_active = ?", slug, model.StatusPublished, true).
		First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	return c.JSON(seo.GenerateNewsArticleLD(article, h.baseURL))
}

// GetArticleMeta handles GET /api/v1/news/:slug/meta
// Returns the page title and meta description the frontend renders.
func (h *SitemapHandler) GetArticleMeta(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var article model.NewsArticle
	err := h.db.Model(&model.NewsArticle{}).
		Where("slug = ? AND status = ? AND is_active = ?", slug, model.StatusPublished, true).
		First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Article not found")
		}
		return response.InternalServerError(c, "Failed to fetch article")
	}

	return response.Success(c, seo.Generate(article))
}
