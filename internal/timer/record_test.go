package timer

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func mustRecord(t *testing.T, name string) *Record {
	t.Helper()
	r, err := NewRecord(name, nil, nil, t0)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return r
}

func TestNewRecordRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewRecord(name, nil, nil, t0); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("name %q: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestNewRecordStartsRunning(t *testing.T) {
	pid := uint(3)
	r, err := NewRecord("  Write report  ", &pid, []uint{1, 2}, t0)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Running {
		t.Error("new record should be running")
	}
	if r.Name != "Write report" {
		t.Errorf("name not trimmed: %q", r.Name)
	}
	if r.AccumulatedPause != 0 {
		t.Errorf("expected zero accumulated pause, got %v", r.AccumulatedPause)
	}
	if r.ID == "" {
		t.Error("expected assigned id")
	}
	if len(r.TagIDs) != 2 {
		t.Errorf("expected 2 tags, got %d", len(r.TagIDs))
	}
}

func TestElapsedWhileRunning(t *testing.T) {
	r := mustRecord(t, "A")
	if got := r.ElapsedAt(t0.Add(30 * time.Second)); got != 30*time.Second {
		t.Errorf("expected 30s, got %v", got)
	}
}

func TestElapsedNeverNegative(t *testing.T) {
	r := mustRecord(t, "A")
	// Clock skew: now before the start instant.
	if got := r.ElapsedAt(t0.Add(-5 * time.Second)); got != 0 {
		t.Errorf("expected clamped 0, got %v", got)
	}
}

func TestPauseFreezesElapsed(t *testing.T) {
	r := mustRecord(t, "A")
	r.Pause(t0.Add(30 * time.Second))

	if r.Running {
		t.Error("record should be paused")
	}
	// Frozen regardless of how much later we ask.
	if got := r.ElapsedAt(t0.Add(10 * time.Minute)); got != 30*time.Second {
		t.Errorf("expected frozen 30s, got %v", got)
	}
}

func TestPauseIdempotent(t *testing.T) {
	r := mustRecord(t, "A")
	r.Pause(t0.Add(30 * time.Second))
	r.Pause(t0.Add(60 * time.Second)) // duplicate UI event

	if got := r.ElapsedAt(t0.Add(2 * time.Minute)); got != 30*time.Second {
		t.Errorf("second pause changed frozen value: %v", got)
	}
}

func TestResumeIdempotent(t *testing.T) {
	r := mustRecord(t, "A")
	r.Resume(t0.Add(10 * time.Second)) // already running

	if r.AccumulatedPause != 0 {
		t.Errorf("resume on a running record changed pause: %v", r.AccumulatedPause)
	}
	if got := r.ElapsedAt(t0.Add(20 * time.Second)); got != 20*time.Second {
		t.Errorf("expected 20s, got %v", got)
	}
}

func TestPauseResumeCycle(t *testing.T) {
	// Run 30s, pause for 10s, run 15s more: elapsed is 45s total.
	r := mustRecord(t, "Write report")
	r.Pause(t0.Add(30 * time.Second))
	r.Resume(t0.Add(40 * time.Second))

	if !r.Running {
		t.Fatal("record should be running after resume")
	}
	if r.AccumulatedPause != 10*time.Second {
		t.Errorf("expected 10s accumulated pause, got %v", r.AccumulatedPause)
	}
	if got := r.ElapsedAt(t0.Add(55 * time.Second)); got != 45*time.Second {
		t.Errorf("expected 45s elapsed, got %v", got)
	}
}

func TestAccumulatedPauseMonotonic(t *testing.T) {
	r := mustRecord(t, "A")
	r.Pause(t0.Add(30 * time.Second))
	r.Resume(t0.Add(40 * time.Second))
	r.Pause(t0.Add(45 * time.Second))
	// Resume with a skewed clock that went backwards.
	r.Resume(t0.Add(41 * time.Second))

	if r.AccumulatedPause < 10*time.Second {
		t.Errorf("accumulated pause decreased: %v", r.AccumulatedPause)
	}
	if got := r.ElapsedAt(t0.Add(50 * time.Second)); got < 0 {
		t.Errorf("negative elapsed: %v", got)
	}
}

func TestElapsedMonotonicWhileRunning(t *testing.T) {
	r := mustRecord(t, "A")
	var prev time.Duration
	for i := 0; i <= 120; i++ {
		now := t0.Add(time.Duration(i) * time.Second)
		switch i {
		case 20:
			r.Pause(now)
		case 35:
			r.Resume(now)
		case 80:
			r.Pause(now)
		case 90:
			r.Resume(now)
		}
		got := r.ElapsedAt(now)
		if got < prev {
			t.Fatalf("elapsed went backwards at t+%ds: %v < %v", i, got, prev)
		}
		prev = got
	}
}

func TestToggleTag(t *testing.T) {
	r := mustRecord(t, "A")
	if !r.ToggleTag(7) {
		t.Error("first toggle should add the tag")
	}
	if r.ToggleTag(7) {
		t.Error("second toggle should remove the tag")
	}
	if len(r.TagIDs) != 0 {
		t.Errorf("expected no tags, got %v", r.TagIDs)
	}
}

func TestReassignProject(t *testing.T) {
	r := mustRecord(t, "A")
	pid := uint(9)
	r.ReassignProject(&pid)
	if r.ProjectID == nil || *r.ProjectID != 9 {
		t.Errorf("expected project 9, got %v", r.ProjectID)
	}
	r.ReassignProject(nil)
	if r.ProjectID != nil {
		t.Error("expected cleared project")
	}
}
