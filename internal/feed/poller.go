package feed

import (
	"time"

	"github.com/mkaganek/tick/internal/models"
)

// Poller derives a change feed for one user by polling the active-timer
// table and diffing against the previously seen rows: unseen ids become
// inserts, newer updated_at stamps become updates, and ids that vanished
// become deletes. The result has the same at-least-once, unordered contract
// as a push feed.
type Poller struct {
	lister   Lister
	userID   string
	interval time.Duration

	events chan Event
	done   chan struct{}
	closed chan struct{}

	seen map[string]seenRow
}

type seenRow struct {
	updatedAt time.Time
	timer     models.ActiveTimer
}

// NewPoller starts polling immediately. The first poll emits every existing
// row as an insert, which the consumer's idempotent insert handling absorbs.
func NewPoller(lister Lister, userID string, interval time.Duration) *Poller {
	p := &Poller{
		lister:   lister,
		userID:   userID,
		interval: interval,
		events:   make(chan Event, 64),
		done:     make(chan struct{}),
		closed:   make(chan struct{}),
		seen:     make(map[string]seenRow),
	}
	go p.run()
	return p
}

// Events returns the inbound event channel. It is closed after Close.
func (p *Poller) Events() <-chan Event {
	return p.events
}

// Close stops polling and closes the event channel. Safe to call once.
func (p *Poller) Close() error {
	close(p.done)
	<-p.closed
	return nil
}

func (p *Poller) run() {
	defer close(p.closed)
	defer close(p.events)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

func (p *Poller) poll() {
	rows, tags, err := p.lister.ListActive(p.userID)
	if err != nil {
		// Transient storage failure: skip this cycle, the next poll
		// re-diffs from the same watermark.
		return
	}

	current := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		current[row.ID] = struct{}{}
		prev, ok := p.seen[row.ID]
		switch {
		case !ok:
			p.emit(Event{Kind: Insert, Timer: row, TagIDs: tags[row.ID]})
		case row.UpdatedAt.After(prev.updatedAt):
			p.emit(Event{Kind: Update, Timer: row, TagIDs: tags[row.ID]})
		}
		p.seen[row.ID] = seenRow{updatedAt: row.UpdatedAt, timer: row}
	}

	for id, prev := range p.seen {
		if _, ok := current[id]; !ok {
			p.emit(Event{Kind: Delete, Timer: prev.timer})
			delete(p.seen, id)
		}
	}
}

func (p *Poller) emit(ev Event) {
	select {
	case p.events <- ev:
	case <-p.done:
	}
}
