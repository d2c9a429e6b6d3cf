package model

import (
	"testing"

	"github.com/indiansabroad/indians-abroad-api/utils/validation"
)

func validTestimonial() Testimonial {
	return Testimonial{
		Name:    "Asha Rao",
		Country: "Germany",
		Rating:  4,
		Service: ServicePRConsulting,
	}
}

func TestTestimonialValidation(t *testing.T) {
	v := validation.NewValidator()

	if err := v.ValidateStruct(validTestimonial()); err != nil {
		t.Fatalf("valid testimonial rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Testimonial)
	}{
		{"rating zero", func(x *Testimonial) { x.Rating = 0 }},
		{"rating over five", func(x *Testimonial) { x.Rating = 6 }},
		{"unknown service", func(x *Testimonial) { x.Service = "Astrology" }},
		{"missing name", func(x *Testimonial) { x.Name = "" }},
		{"missing country", func(x *Testimonial) { x.Country = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validTestimonial()
			tc.mutate(&rec)
			if err := v.ValidateStruct(rec); err == nil {
				t.Errorf("expected validation failure for %s", tc.name)
			}
		})
	}
}

func TestServiceConstantsPassOneof(t *testing.T) {
	v := validation.NewValidator()
	for _, svc := range []string{ServicePRConsulting, ServiceJobVisa, ServiceStudyAbroad} {
		rec := validTestimonial()
		rec.Service = svc
		if err := v.ValidateStruct(rec); err != nil {
			t.Errorf("service %q rejected: %v", svc, err)
		}
	}
}
