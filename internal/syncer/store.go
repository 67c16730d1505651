package syncer

import (
	"errors"

	"github.com/mkaganek/tick/internal/models"
)

// ErrStorageUnavailable wraps any persistence failure. Local in-memory state
// is kept as-is when it occurs; the inconsistency window closes on the next
// successful push.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store is the slice of the persistence layer the adapter mirrors timer
// state through. internal/db's Gateway satisfies it; tests use a fake.
type Store interface {
	ListActive(userID string) ([]models.ActiveTimer, map[string][]uint, error)
	InsertTimer(row models.ActiveTimer, tagIDs []uint) error
	UpdateTimer(row models.ActiveTimer) error
	UpdateProgress(id string, elapsedMS int64, isRunning bool, pausedMS int64) error
	DeleteTimer(id string) error
	AddTimerTag(id string, tagID uint) error
	RemoveTimerTag(id string, tagID uint) error
}
