package email

import (
	"errors"
	"testing"
)

func TestDefaultRequestIsValid(t *testing.T) {
	if err := DefaultRequest().Validate(); err != nil {
		t.Fatalf("default request must validate, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeSlider(t *testing.T) {
	cases := []func(*Request){
		func(r *Request) { r.Tone = -1 },
		func(r *Request) { r.Tone = 101 },
		func(r *Request) { r.Length = 250 },
		func(r *Request) { r.Temperature = -5 },
		func(r *Request) { r.Urgency = 1000 },
		func(r *Request) { r.CTAStrength = -100 },
		func(r *Request) { r.Politeness = 101 },
	}
	for i, mutate := range cases {
		req := DefaultRequest()
		mutate(&req)
		err := req.Validate()
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
}

func TestValidateRejectsUnknownEnum(t *testing.T) {
	cases := []func(*Request){
		func(r *Request) { r.Preset = "spam" },
		func(r *Request) { r.Preset = "" },
		func(r *Request) { r.Salutation = "howdy" },
		func(r *Request) { r.SignOff = "xoxo" },
		func(r *Request) { r.Language = "klingon" },
		func(r *Request) { r.Audience = "everyone" },
		func(r *Request) { r.Purpose = "world_domination" },
		func(r *Request) { r.ResponseType = "carrier_pigeon" },
		func(r *Request) { r.Industry = "piracy" },
		func(r *Request) { r.Relationship = "nemesis" },
	}
	for i, mutate := range cases {
		req := DefaultRequest()
		mutate(&req)
		err := req.Validate()
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
}

func TestValidateAcceptsSliderEdges(t *testing.T) {
	req := DefaultRequest()
	req.Tone = 0
	req.Length = 100
	req.Urgency = 100
	if err := req.Validate(); err != nil {
		t.Fatalf("edge values are valid, got %v", err)
	}
}

func TestAllOptionsAreValid(t *testing.T) {
	opts := AllOptions()
	for _, p := range opts.Presets {
		if !p.valid() {
			t.Fatalf("listed preset %q not valid", p)
		}
	}
	for _, l := range opts.Languages {
		if !l.valid() {
			t.Fatalf("listed language %q not valid", l)
		}
	}
	for _, r := range opts.Relationships {
		if !r.valid() {
			t.Fatalf("listed relationship %q not valid", r)
		}
	}
}
