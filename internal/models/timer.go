package models

import (
	"time"
)

// ActiveTimer is the persisted row for an in-flight stopwatch. One row per
// running or paused timer; the row is deleted when the timer is stopped or
// cancelled. Other sessions of the same user see these rows through the
// change feed.
type ActiveTimer struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string    `gorm:"index;not null" json:"user_id"`
	Description string    `gorm:"not null" json:"description"`
	ProjectID   *uint     `json:"project_id"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	ElapsedMS   int64     `gorm:"column:elapsed_time" json:"elapsed_time"`
	IsRunning   bool      `gorm:"default:true" json:"is_running"`
	PausedMS    int64     `gorm:"column:paused_time" json:"paused_time"`

	// Relationships
	Project *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"project,omitempty"`
}

// ActiveTimerTag is the join table between active timers and tags,
// unique per pair.
type ActiveTimerTag struct {
	ActiveTimerID string `gorm:"primaryKey"`
	TagID         uint   `gorm:"primaryKey"`
}
