package timer

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Snapshot captures everything the completion sink needs to turn a stopped
// timer into a permanent activity.
type Snapshot struct {
	ID        string
	Name      string
	Duration  time.Duration
	StartedAt time.Time
	EndedAt   time.Time
	ProjectID *uint
	TagIDs    []uint
}

// CompletionSink converts a stopped timer into a permanent activity record.
// Implemented by the storage layer; never invoked for cancelled timers.
type CompletionSink interface {
	Complete(Snapshot) error
}

// RemoteState is the subset of a timer's fields another session may
// overwrite through the change feed.
type RemoteState struct {
	Elapsed   time.Duration
	Running   bool
	Paused    time.Duration
	ProjectID *uint
	// TagIDs replaces the tag set when non-nil.
	TagIDs []uint
}

// Set owns the collection of concurrently active timers. All mutation goes
// through its methods; UI commands and the sync adapter's feed handlers are
// the only callers.
type Set struct {
	mu      sync.Mutex
	records map[string]*Record
	sink    CompletionSink
}

// NewSet creates an empty timer set. The sink may be nil, in which case
// stopped timers are discarded like cancelled ones.
func NewSet(sink CompletionSink) *Set {
	return &Set{
		records: make(map[string]*Record),
		sink:    sink,
	}
}

// StartNew creates a running record and returns its id. There is no limit
// on the number of concurrent timers.
func (s *Set) StartNew(name string, projectID *uint, tagIDs []uint, now time.Time) (string, error) {
	r, err := NewRecord(name, projectID, tagIDs, now)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.records[r.ID] = r
	s.mu.Unlock()
	return r.ID, nil
}

// Pause freezes the named timer. Already-paused timers are left untouched.
func (s *Set) Pause(id string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	r.Pause(now)
	return nil
}

// Resume restarts the named timer. Already-running timers are left untouched.
func (s *Set) Resume(id string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	r.Resume(now)
	return nil
}

// Stop removes the timer and hands a snapshot to the completion sink. The
// end instant is computed from the elapsed time, not from the wall clock, so
// a stop issued after a long pause does not inflate the duration.
func (s *Set) Stop(id string, now time.Time) (Snapshot, error) {
	s.mu.Lock()
	r, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	elapsed := r.ElapsedAt(now)
	snap := Snapshot{
		ID:        r.ID,
		Name:      r.Name,
		Duration:  elapsed,
		StartedAt: r.StartedAt,
		EndedAt:   r.StartedAt.Add(elapsed),
		ProjectID: r.ProjectID,
		TagIDs:    r.Tags(),
	}
	delete(s.records, id)
	s.mu.Unlock()

	if s.sink != nil {
		if err := s.sink.Complete(snap); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

// Cancel removes the timer without invoking the completion sink.
func (s *Set) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Tick refreshes the computed elapsed time of every running timer. It is a
// read-side refresh for display; nothing is persisted.
func (s *Set) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.Running {
			r.Elapsed = r.ElapsedAt(now)
		}
	}
}

// ReassignProject changes the named timer's project association.
func (s *Set) ReassignProject(id string, projectID *uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	r.ReassignProject(projectID)
	return nil
}

// ToggleTag toggles a tag on the named timer and reports whether the tag is
// associated after the call.
func (s *Set) ToggleTag(id string, tagID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return false, ErrNotFound
	}
	return r.ToggleTag(tagID), nil
}

// Get returns a copy of the named record.
func (s *Set) Get(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return r.clone(), true
}

// List returns copies of all active records ordered by start instant, then
// id for stability.
func (s *Set) List() []Record {
	s.mu.Lock()
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.clone())
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// Len reports the number of active timers.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ResolvePrefix finds the single active timer whose id starts with the given
// prefix. Returns ErrNotFound when nothing matches and ErrAmbiguous when
// more than one timer does.
func (s *Set) ResolvePrefix(prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var match string
	for id := range s.records {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", ErrAmbiguous
			}
			match = id
		}
	}
	if match == "" {
		return "", ErrNotFound
	}
	return match, nil
}

// Insert adds a record reconstructed from storage or a feed insert event.
// Inserting an id that is already present is a no-op; it reports whether the
// record was added.
func (s *Set) Insert(r *Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[r.ID]; ok {
		return false
	}
	s.records[r.ID] = r
	return true
}

// ApplyRemote overlays a feed update onto the matching record. Updates for
// unknown ids (already stopped locally) are silently ignored; it reports
// whether a record was changed.
func (s *Set) ApplyRemote(id string, st RemoteState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return false
	}
	r.Elapsed = st.Elapsed
	r.Running = st.Running
	if st.Paused > r.AccumulatedPause {
		r.AccumulatedPause = st.Paused
	}
	r.ProjectID = st.ProjectID
	if st.TagIDs != nil {
		r.TagIDs = make(map[uint]struct{}, len(st.TagIDs))
		for _, tid := range st.TagIDs {
			r.TagIDs[tid] = struct{}{}
		}
	}
	return true
}

// Remove drops a record without invoking the completion sink, used for feed
// deletes already accounted for by the session that issued them. Removing an
// absent id is a no-op; it reports whether a record was removed.
func (s *Set) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}
