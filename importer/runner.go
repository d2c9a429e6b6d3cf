package importer

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/indiansabroad/indians-abroad-api/model"
)

const (
	// DefaultDelay is the pause between records, a courtesy toward the
	// upstream API's rate limits, not a correctness requirement.
	DefaultDelay = 150 * time.Millisecond

	// DefaultBatchDelay is the longer pause between batches when batching
	// is enabled.
	DefaultBatchDelay = 2 * time.Second

	// maxErrorLength truncates logged per-record errors
	maxErrorLength = 120
)

// Options configures an import run
type Options struct {
	Delay      time.Duration // pause between records (DefaultDelay if 0)
	BatchSize  int           // records per batch; 0 disables batching
	BatchDelay time.Duration // pause between batches (DefaultBatchDelay if 0)
}

// Failure records one record that could not be submitted
type Failure struct {
	Index int
	Name  string
	Error string
}

// Summary is the outcome of an import run. Succeeded records stay in the
// store even when later records fail; there is no rollback.
type Summary struct {
	BatchID   string
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Runner imports parsed records one at a time through a Submitter
type Runner struct {
	submitter Submitter
	opts      Options
}

// NewRunner creates an import runner over the given transport
func NewRunner(submitter Submitter, opts Options) *Runner {
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	if opts.BatchSize > 0 && opts.BatchDelay == 0 {
		opts.BatchDelay = DefaultBatchDelay
	}
	return &Runner{
		submitter: submitter,
		opts:      opts,
	}
}

// ImportTestimonials submits every testimonial sequentially. A failed
// record is logged and counted; the run continues to the next record.
func (r *Runner) ImportTestimonials(ctx context.Context, testimonials []model.Testimonial) Summary {
	return r.run(ctx, len(testimonials),
		func(i int) string { return testimonials[i].Name },
		func(ctx context.Context, i int) error {
			return r.submitter.SubmitTestimonial(ctx, &testimonials[i])
		})
}

// ImportUniversities submits every university sequentially
func (r *Runner) ImportUniversities(ctx context.Context, universities []model.University) Summary {
	return r.run(ctx, len(universities),
		func(i int) string { return universities[i].Name },
		func(ctx context.Context, i int) error {
			return r.submitter.SubmitUniversity(ctx, &universities[i])
		})
}

func (r *Runner) run(ctx context.Context, total int, name func(int) string, submit func(context.Context, int) error) Summary {
	summary := Summary{
		BatchID: uuid.New().String(),
		Total:   total,
	}

	log.Printf("[import %s] starting: %d records via %s transport", summary.BatchID[:8], total, r.submitter.Name())

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			log.Printf("[import %s] cancelled after %d records", summary.BatchID[:8], i)
			break
		}

		if err := submit(ctx, i); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{
				Index: i,
				Name:  name(i),
				Error: truncateError(err),
			})
			log.Printf("[import %s] FAILED %q: %s", summary.BatchID[:8], name(i), truncateError(err))
		} else {
			summary.Succeeded++
			log.Printf("[import %s] ok %q (%d/%d)", summary.BatchID[:8], name(i), i+1, total)
		}

		if i == total-1 {
			break
		}

		// Longer pause on batch boundaries, short pause otherwise
		if r.opts.BatchSize > 0 && (i+1)%r.opts.BatchSize == 0 {
			sleep(ctx, r.opts.BatchDelay)
		} else {
			sleep(ctx, r.opts.Delay)
		}
	}

	log.Printf("[import %s] done: %d succeeded, %d failed of %d",
		summary.BatchID[:8], summary.Succeeded, summary.Failed, summary.Total)

	return summary
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorLength {
		return msg[:maxErrorLength] + "..."
	}
	return msg
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
