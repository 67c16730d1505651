package feed

import (
	"github.com/mkaganek/tick/internal/models"
)

// Kind classifies a change-feed event.
type Kind string

const (
	Insert Kind = "insert"
	Update Kind = "update"
	Delete Kind = "delete"
)

// Event is one row-level change notification for the active-timer table.
// Delivery is at-least-once and ordering across concurrent writers is not
// guaranteed; consumers must treat every event as potentially duplicated or
// stale.
type Event struct {
	Kind   Kind
	Timer  models.ActiveTimer
	TagIDs []uint
}

// Source is an inbound stream of change events. Close releases the
// subscription; the events channel is closed afterwards.
type Source interface {
	Events() <-chan Event
	Close() error
}

// Lister is the storage read the poller needs: all active-timer rows for a
// user together with their tag associations.
type Lister interface {
	ListActive(userID string) ([]models.ActiveTimer, map[string][]uint, error)
}
