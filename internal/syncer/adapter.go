package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mkaganek/tick/internal/feed"
	"github.com/mkaganek/tick/internal/models"
	"github.com/mkaganek/tick/internal/timer"
)

const (
	// DefaultPushInterval bounds how much running-timer progress a crash or
	// reload can lose.
	DefaultPushInterval = 5 * time.Second

	// DefaultTickInterval drives the shared display refresh for every
	// running timer.
	DefaultTickInterval = time.Second
)

// Options configures an Adapter.
type Options struct {
	UserID       string
	PushInterval time.Duration
	TickInterval time.Duration

	// Source is the inbound change feed; nil disables reconciliation from
	// other sessions (one-shot CLI commands run without one).
	Source feed.Source

	// Report receives storage failures. They are non-fatal; local state is
	// never rolled back.
	Report func(error)
}

// Adapter bridges the in-memory timer set to persistent shared storage.
// Every local mutation is mirrored to the store immediately after the
// optimistic in-memory change; feed events from other sessions are folded
// back into the set; a periodic push persists the elapsed time of every
// running timer.
type Adapter struct {
	set   *timer.Set
	store Store
	opts  Options

	mu      sync.Mutex
	lastErr error
}

// New creates an adapter around an existing set and store.
func New(set *timer.Set, store Store, opts Options) *Adapter {
	if opts.PushInterval <= 0 {
		opts.PushInterval = DefaultPushInterval
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	return &Adapter{set: set, store: store, opts: opts}
}

// Set exposes the underlying timer set for read access.
func (a *Adapter) Set() *timer.Set {
	return a.set
}

// Load restores the active set from storage, typically at session start.
// Restored rows keep their running flag; ticking resumes on the next Tick.
func (a *Adapter) Load() error {
	rows, tags, err := a.store.ListActive(a.opts.UserID)
	if err != nil {
		return a.storageErr("load active timers", err)
	}
	for i := range rows {
		a.set.Insert(recordFromRow(rows[i], tags[rows[i].ID]))
	}
	return nil
}

// StartNew creates a timer and mirrors it to storage. The id is returned
// even when the mirror fails.
func (a *Adapter) StartNew(name string, projectID *uint, tagIDs []uint) (string, error) {
	id, err := a.set.StartNew(name, projectID, tagIDs, time.Now())
	if err != nil {
		return "", err
	}
	rec, _ := a.set.Get(id)
	if err := a.store.InsertTimer(rowFromRecord(rec, a.opts.UserID), rec.Tags()); err != nil {
		return id, a.storageErr("insert timer", err)
	}
	return id, nil
}

// Pause freezes the timer and mirrors the frozen state.
func (a *Adapter) Pause(id string) error {
	if err := a.set.Pause(id, time.Now()); err != nil {
		return err
	}
	return a.mirrorProgress(id)
}

// Resume restarts the timer and mirrors the new state.
func (a *Adapter) Resume(id string) error {
	if err := a.set.Resume(id, time.Now()); err != nil {
		return err
	}
	return a.mirrorProgress(id)
}

// Stop completes the timer through the sink and deletes its row. The local
// removal stands even when storage fails.
func (a *Adapter) Stop(id string) (timer.Snapshot, error) {
	snap, err := a.set.Stop(id, time.Now())
	if err != nil {
		if errors.Is(err, timer.ErrNotFound) {
			return snap, err
		}
		// Sink failure: the record is already removed locally.
		return snap, a.storageErr("record activity", err)
	}
	if err := a.store.DeleteTimer(id); err != nil {
		return snap, a.storageErr("delete timer", err)
	}
	return snap, nil
}

// Cancel discards the timer and deletes its row; the completion sink is
// never invoked.
func (a *Adapter) Cancel(id string) error {
	if err := a.set.Cancel(id); err != nil {
		return err
	}
	if err := a.store.DeleteTimer(id); err != nil {
		return a.storageErr("delete timer", err)
	}
	return nil
}

// ReassignProject changes the project association and mirrors it.
func (a *Adapter) ReassignProject(id string, projectID *uint) error {
	if err := a.set.ReassignProject(id, projectID); err != nil {
		return err
	}
	rec, ok := a.set.Get(id)
	if !ok {
		return timer.ErrNotFound
	}
	if err := a.store.UpdateTimer(rowFromRecord(rec, a.opts.UserID)); err != nil {
		return a.storageErr("update timer", err)
	}
	return nil
}

// ToggleTag toggles a tag and mirrors the association row.
func (a *Adapter) ToggleTag(id string, tagID uint) (bool, error) {
	added, err := a.set.ToggleTag(id, tagID)
	if err != nil {
		return false, err
	}
	if added {
		err = a.store.AddTimerTag(id, tagID)
	} else {
		err = a.store.RemoveTimerTag(id, tagID)
	}
	if err != nil {
		return added, a.storageErr("update timer tag", err)
	}
	return added, nil
}

// Tick refreshes elapsed time for display.
func (a *Adapter) Tick(now time.Time) {
	a.set.Tick(now)
}

// Apply folds one change-feed event into the set. Inserts for known ids and
// updates or deletes for unknown ids are benign no-ops: the feed is
// at-least-once and may race with locally issued mutations.
func (a *Adapter) Apply(ev feed.Event) {
	switch ev.Kind {
	case feed.Insert:
		if ev.Timer.UserID != a.opts.UserID {
			return
		}
		a.set.Insert(recordFromRow(ev.Timer, ev.TagIDs))
	case feed.Update:
		st := timer.RemoteState{
			Elapsed:   time.Duration(ev.Timer.ElapsedMS) * time.Millisecond,
			Running:   ev.Timer.IsRunning,
			Paused:    time.Duration(ev.Timer.PausedMS) * time.Millisecond,
			ProjectID: ev.Timer.ProjectID,
			TagIDs:    ev.TagIDs,
		}
		a.set.ApplyRemote(ev.Timer.ID, st)
	case feed.Delete:
		// The session that issued the stop or cancel already accounted for
		// it; no completion sink here.
		a.set.Remove(ev.Timer.ID)
	}
}

// Push persists the current elapsed time of every running timer so a crash
// or reload loses at most one interval's worth of progress.
func (a *Adapter) Push(now time.Time) {
	for _, rec := range a.set.List() {
		if !rec.Running {
			continue
		}
		elapsed := rec.ElapsedAt(now)
		err := a.store.UpdateProgress(rec.ID, elapsed.Milliseconds(), true, rec.AccumulatedPause.Milliseconds())
		if err != nil {
			a.storageErr("push progress", err)
		}
	}
}

// Run drives the shared loop: one display tick for all running timers, one
// periodic progress push, and the feed channel, multiplexed on a single
// goroutine. Tickers and the feed subscription are released unconditionally
// when ctx is cancelled.
func (a *Adapter) Run(ctx context.Context) error {
	displayTick := time.NewTicker(a.opts.TickInterval)
	defer displayTick.Stop()
	pushTick := time.NewTicker(a.opts.PushInterval)
	defer pushTick.Stop()

	var events <-chan feed.Event
	if a.opts.Source != nil {
		events = a.opts.Source.Events()
		defer a.opts.Source.Close()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-displayTick.C:
			a.set.Tick(now)
		case now := <-pushTick.C:
			a.Push(now)
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			a.Apply(ev)
		}
	}
}

// LastError returns and clears the most recent reported storage failure.
func (a *Adapter) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.lastErr
	a.lastErr = nil
	return err
}

func (a *Adapter) storageErr(op string, err error) error {
	wrapped := fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	a.mu.Lock()
	a.lastErr = wrapped
	a.mu.Unlock()
	if a.opts.Report != nil {
		a.opts.Report(wrapped)
	}
	return wrapped
}

// mirrorProgress writes the current elapsed/running/paused fields of one
// timer to storage.
func (a *Adapter) mirrorProgress(id string) error {
	rec, ok := a.set.Get(id)
	if !ok {
		return timer.ErrNotFound
	}
	err := a.store.UpdateProgress(rec.ID, rec.Elapsed.Milliseconds(), rec.Running, rec.AccumulatedPause.Milliseconds())
	if err != nil {
		return a.storageErr("update progress", err)
	}
	return nil
}

// recordFromRow reconstructs an in-memory record from a persisted row.
func recordFromRow(row models.ActiveTimer, tagIDs []uint) *timer.Record {
	r := &timer.Record{
		ID:               row.ID,
		Name:             row.Description,
		StartedAt:        row.StartTime,
		ProjectID:        row.ProjectID,
		TagIDs:           make(map[uint]struct{}, len(tagIDs)),
		AccumulatedPause: time.Duration(row.PausedMS) * time.Millisecond,
		Running:          row.IsRunning,
		Elapsed:          time.Duration(row.ElapsedMS) * time.Millisecond,
	}
	for _, id := range tagIDs {
		r.TagIDs[id] = struct{}{}
	}
	return r
}

// rowFromRecord maps an in-memory record to its persisted shape.
func rowFromRecord(rec timer.Record, userID string) models.ActiveTimer {
	return models.ActiveTimer{
		ID:          rec.ID,
		UserID:      userID,
		Description: rec.Name,
		ProjectID:   rec.ProjectID,
		StartTime:   rec.StartedAt,
		ElapsedMS:   rec.Elapsed.Milliseconds(),
		IsRunning:   rec.Running,
		PausedMS:    rec.AccumulatedPause.Milliseconds(),
	}
}
