package parser

import (
	"testing"
	"time"
)

func TestParseTitlePlain(t *testing.T) {
	got := ParseTitle("Write report")
	if got.Description != "Write report" {
		t.Errorf("description: %q", got.Description)
	}
	if got.Project != "" || len(got.Tags) != 0 || len(got.Errors) != 0 {
		t.Errorf("unexpected metadata: %+v", got)
	}
}

func TestParseTitleFullSyntax(t *testing.T) {
	got := ParseTitle("Write report @acme #deep,writing")
	if got.Description != "Write report" {
		t.Errorf("description: %q", got.Description)
	}
	if got.Project != "acme" {
		t.Errorf("project: %q", got.Project)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "deep" || got.Tags[1] != "writing" {
		t.Errorf("tags: %v", got.Tags)
	}
}

func TestParseTitleSeparateTags(t *testing.T) {
	got := ParseTitle("Fix bug #urgent #backend")
	if len(got.Tags) != 2 {
		t.Errorf("tags: %v", got.Tags)
	}
	if got.Description != "Fix bug" {
		t.Errorf("description: %q", got.Description)
	}
}

func TestParseTitleMetadataOnly(t *testing.T) {
	got := ParseTitle("@acme #deep")
	if len(got.Errors) == 0 {
		t.Error("expected empty-description error")
	}
}

func TestParseSinceDate(t *testing.T) {
	got, err := ParseSince("15/12/2025")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 12, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseSinceRelative(t *testing.T) {
	for _, input := range []string{"3 days", "24 hours", "2 weeks", "1 day"} {
		got, err := ParseSince(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if !got.Before(time.Now()) {
			t.Errorf("%q: expected a past instant, got %v", input, got)
		}
	}
}

func TestParseSinceEmpty(t *testing.T) {
	got, err := ParseSince("")
	if err != nil || got != nil {
		t.Errorf("expected nil, nil for empty input, got %v, %v", got, err)
	}
}

func TestParseSinceInvalid(t *testing.T) {
	for _, input := range []string{"soon", "99/99/2025", "3 months"} {
		if _, err := ParseSince(input); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
}
