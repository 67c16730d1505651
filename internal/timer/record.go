package timer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record represents one in-flight activity's temporal state. A record is
// either running or paused from creation until it leaves the active set.
type Record struct {
	ID        string
	Name      string
	StartedAt time.Time
	ProjectID *uint
	TagIDs    map[uint]struct{}

	// AccumulatedPause is the total time spent paused so far. It never
	// decreases.
	AccumulatedPause time.Duration

	Running bool

	// Elapsed is the last computed elapsed value. While paused it is frozen;
	// while running it is refreshed by ElapsedAt/Tick.
	Elapsed time.Duration
}

// NewRecord creates a running record. The name must be non-empty after
// trimming whitespace.
func NewRecord(name string, projectID *uint, tagIDs []uint, now time.Time) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	r := &Record{
		ID:        uuid.NewString(),
		Name:      name,
		StartedAt: now,
		ProjectID: projectID,
		TagIDs:    make(map[uint]struct{}, len(tagIDs)),
		Running:   true,
	}
	for _, id := range tagIDs {
		r.TagIDs[id] = struct{}{}
	}
	return r, nil
}

// ElapsedAt returns the elapsed time at the given instant. While running the
// value is derived from the start instant minus accumulated pauses, clamped
// to be non-negative; while paused the frozen value is returned.
func (r *Record) ElapsedAt(now time.Time) time.Duration {
	if !r.Running {
		return r.Elapsed
	}
	elapsed := now.Sub(r.StartedAt) - r.AccumulatedPause
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// Pause freezes the elapsed time. Pausing an already-paused record is a
// no-op, which tolerates duplicate UI events and reordered feed updates.
func (r *Record) Pause(now time.Time) {
	if !r.Running {
		return
	}
	r.Elapsed = r.ElapsedAt(now)
	r.Running = false
}

// Resume restarts the stopwatch without resetting the start instant: the
// paused gap is folded into AccumulatedPause so that elapsed time continues
// from the frozen value. AccumulatedPause never decreases even under clock
// skew. Resuming an already-running record is a no-op.
func (r *Record) Resume(now time.Time) {
	if r.Running {
		return
	}
	if pause := now.Sub(r.StartedAt) - r.Elapsed; pause > r.AccumulatedPause {
		r.AccumulatedPause = pause
	}
	r.Running = true
}

// ReassignProject changes the project association. A nil id clears it.
func (r *Record) ReassignProject(projectID *uint) {
	r.ProjectID = projectID
}

// ToggleTag adds the tag if absent and removes it if present. It reports
// whether the tag is associated after the call.
func (r *Record) ToggleTag(tagID uint) bool {
	if _, ok := r.TagIDs[tagID]; ok {
		delete(r.TagIDs, tagID)
		return false
	}
	r.TagIDs[tagID] = struct{}{}
	return true
}

// Tags returns a copy of the tag ids in no particular order.
func (r *Record) Tags() []uint {
	ids := make([]uint, 0, len(r.TagIDs))
	for id := range r.TagIDs {
		ids = append(ids, id)
	}
	return ids
}

// clone returns a shallow copy safe to hand to callers outside the set's
// lock. The tag map is copied.
func (r *Record) clone() Record {
	c := *r
	c.TagIDs = make(map[uint]struct{}, len(r.TagIDs))
	for id := range r.TagIDs {
		c.TagIDs[id] = struct{}{}
	}
	return c
}
