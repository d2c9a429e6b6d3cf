package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/indiansabroad/indians-abroad-api/config"
	"github.com/indiansabroad/indians-abroad-api/database"
	"github.com/indiansabroad/indians-abroad-api/importer"
	"gorm.io/gorm"
)

func main() {
	var (
		csvPath    = flag.String("csv", "testimonials.csv", "path to the exported testimonial sheet")
		transport  = flag.String("transport", "direct", "submission transport: direct | api")
		apiURL     = flag.String("api-url", "http://localhost:8080", "API base URL (api transport)")
		apiToken   = flag.String("api-token", os.Getenv("ADMIN_API_TOKEN"), "admin bearer token (api transport)")
		delay      = flag.Duration("delay", importer.DefaultDelay, "pause between records")
		batchSize  = flag.Int("batch-size", 0, "records per batch, 0 disables batching")
		batchDelay = flag.Duration("batch-delay", importer.DefaultBatchDelay, "pause between batches")
	)
	flag.Parse()

	testimonials, err := importer.ReadTestimonialSheet(*csvPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *csvPath, err)
	}
	log.Printf("Parsed %d testimonials from %s", len(testimonials), *csvPath)

	var submitter importer.Submitter
	switch *transport {
	case "direct":
		if err := config.LoadENV(); err != nil {
			log.Printf("Warning: could not load .env: %v", err)
		}
		store, err := database.StartGORM()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer store.Close()
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			log.Fatal("Failed to get GORM DB instance")
		}
		submitter = importer.NewDirectSubmitter(db)
	case "api":
		if *apiToken == "" {
			log.Fatal("api transport requires -api-token or ADMIN_API_TOKEN")
		}
		submitter = importer.NewAPISubmitter(*apiURL, *apiToken)
	default:
		log.Fatalf("Unknown transport %q (want direct or api)", *transport)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := importer.NewRunner(submitter, importer.Options{
		Delay:      *delay,
		BatchSize:  *batchSize,
		BatchDelay: *batchDelay,
	})

	start := time.Now()
	summary := runner.ImportTestimonials(ctx, testimonials)
	log.Printf("Batch %s finished in %s: %d/%d succeeded, %d failed",
		summary.BatchID, time.Since(start).Round(time.Second), summary.Succeeded, summary.Total, summary.Failed)
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
