package app

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/indiansabroad/indians-abroad-api/api"
	"github.com/indiansabroad/indians-abroad-api/config"
	"github.com/indiansabroad/indians-abroad-api/database"
	"github.com/indiansabroad/indians-abroad-api/router"
	"github.com/indiansabroad/indians-abroad-api/services"
	"github.com/indiansabroad/indians-abroad-api/services/cron"
	"github.com/indiansabroad/indians-abroad-api/services/newsfetch"
	"github.com/indiansabroad/indians-abroad-api/services/openrouter"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		print("Error running migrations:\n")
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			// The digest job is a no-op without an OpenRouter key
			var digestService *services.DigestService
			if getEnv.OPENROUTER_API_KEY != "" {
				llm := openrouter.NewClient(openrouter.Config{
					APIKey: getEnv.OPENROUTER_API_KEY,
					Model:  getEnv.OPENROUTER_MODEL,
				})
				digestService = services.NewDigestService(db, llm, newsfetch.NewFetcher(nil))
			}

			cronManager = cron.NewCronManager(db, digestService)
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	// Custom Logger
	app.Use(logger.New())

	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, store)

	// Get the PORT & Start the Server
	return server.Run()

}
