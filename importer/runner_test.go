package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/indiansabroad/indians-abroad-api/model"
)

// fakeSubmitter fails for names listed in failFor and records call order
type fakeSubmitter struct {
	failFor   map[string]bool
	submitted []string
}

func (f *fakeSubmitter) Name() string { return "fake" }

func (f *fakeSubmitter) SubmitTestimonial(_ context.Context, t *model.Testimonial) error {
	f.submitted = append(f.submitted, t.Name)
	if f.failFor[t.Name] {
		return errors.New("duplicate record")
	}
	return nil
}

func (f *fakeSubmitter) SubmitUniversity(_ context.Context, u *model.University) error {
	f.submitted = append(f.submitted, u.Name)
	if f.failFor[u.Name] {
		return errors.New("duplicate record")
	}
	return nil
}

func TestRunnerContinuesPastFailures(t *testing.T) {
	sub := &fakeSubmitter{failFor: map[string]bool{"Beta": true}}
	runner := NewRunner(sub, Options{Delay: 1})

	records := []model.Testimonial{
		{Name: "Alpha"}, {Name: "Beta"}, {Name: "Gamma"},
	}
	summary := runner.ImportTestimonials(context.Background(), records)

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want 2 succeeded 1 failed of 3", summary)
	}
	if len(sub.submitted) != 3 {
		t.Fatalf("submitted %d records, want all 3", len(sub.submitted))
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Name != "Beta" || summary.Failures[0].Index != 1 {
		t.Errorf("failure record = %+v", summary.Failures)
	}
	if summary.BatchID == "" {
		t.Error("expected a batch ID")
	}
}

func TestRunnerEmptyInput(t *testing.T) {
	sub := &fakeSubmitter{}
	runner := NewRunner(sub, Options{Delay: 1})

	summary := runner.ImportUniversities(context.Background(), nil)
	if summary.Total != 0 || summary.Succeeded != 0 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want all zero", summary)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sub := &fakeSubmitter{}
	runner := NewRunner(sub, Options{Delay: 1})

	records := []model.University{{Name: "TUM"}, {Name: "Toronto"}}
	summary := runner.ImportUniversities(ctx, records)

	if len(sub.submitted) != 0 {
		t.Errorf("submitted %d records after cancel, want 0", len(sub.submitted))
	}
	if summary.Succeeded != 0 {
		t.Errorf("succeeded = %d, want 0", summary.Succeeded)
	}
}
