package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/indiansabroad/indians-abroad-api/config"
	"github.com/indiansabroad/indians-abroad-api/database"
	"github.com/indiansabroad/indians-abroad-api/handlers"
	auth_handlers "github.com/indiansabroad/indians-abroad-api/handlers/auth"
	news_handlers "github.com/indiansabroad/indians-abroad-api/handlers/news"
	sitemap_handlers "github.com/indiansabroad/indians-abroad-api/handlers/sitemap"
	testimonial_handlers "github.com/indiansabroad/indians-abroad-api/handlers/testimonial"
	university_handlers "github.com/indiansabroad/indians-abroad-api/handlers/university"
	"github.com/indiansabroad/indians-abroad-api/services"
	"github.com/indiansabroad/indians-abroad-api/services/newsfetch"
	"github.com/indiansabroad/indians-abroad-api/services/openrouter"
	"github.com/indiansabroad/indians-abroad-api/services/spaces"
	"github.com/indiansabroad/indians-abroad-api/utils/auth"
	"github.com/indiansabroad/indians-abroad-api/utils/cache"
	"github.com/indiansabroad/indians-abroad-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load configuration")
	}

	jwtSecret := getEnv.JWT_SECRET
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "indians-abroad-api"
	}

	// Admin tokens are short-lived; there is no refresh flow
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 12 * time.Hour,
		Issuer: jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs brute-force protection and the sitemap cache
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and sitemap caching will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	authHandler := auth_handlers.NewAuthHandler(getEnv.ADMIN_PASSWORD_HASH, jwtManager, bruteForceProtection)

	// Media storage is optional; uploads degrade to 503 without it
	var spacesClient *spaces.Client
	if getEnv.SPACES_ACCESS_KEY != "" {
		spacesClient, err = spaces.NewClient(spaces.Config{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
			CDNURL:    getEnv.SPACES_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize Spaces client: %v. Media uploads will be disabled.", err)
		}
	}

	// Digest generation is optional; the trigger degrades to 503 without a key
	var digestService *services.DigestService
	if getEnv.OPENROUTER_API_KEY != "" {
		llm := openrouter.NewClient(openrouter.Config{
			APIKey: getEnv.OPENROUTER_API_KEY,
			Model:  getEnv.OPENROUTER_MODEL,
		})
		digestService = services.NewDigestService(db, llm, newsfetch.NewFetcher(nil))
	}

	testimonialHandler := testimonial_handlers.NewTestimonialHandler(db, spacesClient)
	universityHandler := university_handlers.NewUniversityHandler(db)
	newsHandler := news_handlers.NewNewsHandler(db, digestService)
	sitemapHandler := sitemap_handlers.NewSitemapHandler(db, redisCache, getEnv.SITE_BASE_URL)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// Sitemap (public, site root)
	app.Get("/sitemap.xml", sitemapHandler.GetSitemap)

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public, brute-force protected when Redis is up)
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Testimonials routes
	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialHandler.ListTestimonials)                                              // Public: List active testimonials
	testimonials.Get("/:id", testimonialHandler.GetTestimonial)                                             // Public: Get testimonial by ID
	testimonials.Post("/", authMiddleware.RequireAdmin(), testimonialHandler.CreateTestimonial)             // Admin only: Create testimonial
	testimonials.Patch("/:id", authMiddleware.RequireAdmin(), testimonialHandler.UpdateTestimonial)         // Admin only: Update / deactivate
	testimonials.Post("/:id/photo", authMiddleware.RequireAdmin(), testimonialHandler.UploadPhoto)          // Admin only: Upload photo
	testimonials.Post("/:id/documents", authMiddleware.RequireAdmin(), testimonialHandler.UploadDocument)   // Admin only: Upload supporting PDF

	// Universities routes
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)                                   // Public: List active universities
	universities.Get("/countries", universityHandler.GetCountries)                              // Public: Distinct countries
	universities.Get("/:id", universityHandler.GetUniversity)                                   // Public: Get university by ID
	universities.Post("/bulk", authMiddleware.RequireAdmin(), universityHandler.BulkInsert)     // Admin only: Bulk insert
	universities.Patch("/:id", authMiddleware.RequireAdmin(), universityHandler.UpdateUniversity) // Admin only: Partial patch

	// News routes
	news := api.Group("/news")
	news.Get("/", newsHandler.ListNews)                                            // Public: List published articles
	news.Get("/categories", newsHandler.GetCategoryCounts)                         // Public: Per-category counts
	news.Post("/", authMiddleware.RequireAdmin(), newsHandler.CreateNews)          // Admin only: Manual article entry
	news.Post("/digest", authMiddleware.RequireAdmin(), newsHandler.GenerateDigest) // Admin only: Run digest pipeline now
	news.Patch("/:id", authMiddleware.RequireAdmin(), newsHandler.UpdateNews)      // Admin only: Edit / deactivate
	news.Get("/:slug", newsHandler.GetNewsBySlug)                                  // Public: Get article by slug
	news.Get("/:slug/jsonld", sitemapHandler.GetArticleJSONLD)                     // Public: JSON-LD block
	news.Get("/:slug/meta", sitemapHandler.GetArticleMeta)                         // Public: SEO title/description
}
