package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/indiansabroad/indians-abroad-api/config"
	"github.com/indiansabroad/indians-abroad-api/database"
	"github.com/indiansabroad/indians-abroad-api/services"
	"github.com/indiansabroad/indians-abroad-api/services/newsfetch"
	"github.com/indiansabroad/indians-abroad-api/services/openrouter"
	"gorm.io/gorm"
)

// One-shot digest run, useful for backfills and local testing of the
// daily pipeline without waiting for the cron schedule.
func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "overall pipeline timeout")
	flag.Parse()

	if err := config.LoadENV(); err != nil {
		log.Printf("Warning: could not load .env: %v", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if getEnv.OPENROUTER_API_KEY == "" {
		log.Fatal("OPENROUTER_API_KEY environment variable is not set")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	llm := openrouter.NewClient(openrouter.Config{
		APIKey: getEnv.OPENROUTER_API_KEY,
		Model:  getEnv.OPENROUTER_MODEL,
	})
	digest := services.NewDigestService(db, llm, newsfetch.NewFetcher(nil))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	article, err := digest.Run(ctx)
	if err != nil {
		log.Fatalf("Digest generation failed: %v", err)
	}
	log.Printf("Digest saved: id=%d slug=%s reading_time=%dmin", article.ID, article.Slug, article.ReadingTime)
}
