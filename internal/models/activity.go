package models

import (
	"time"
)

// Activity is a completed work entry, written when an active timer stops.
type Activity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string    `gorm:"index;not null" json:"user_id"`
	Description string    `gorm:"not null" json:"description"`
	ProjectID   *uint     `json:"project_id"`
	DurationMS  int64     `gorm:"column:duration" json:"duration"`
	StartedAt   time.Time `gorm:"not null" json:"started_at"`
	EndedAt     time.Time `gorm:"not null" json:"ended_at"`

	// Relationships
	Project *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"project,omitempty"`
	Tags    []Tag    `gorm:"many2many:activity_tags;" json:"tags"`
}

// Project groups activities and timers; association only, no ownership.
type Project struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   string `gorm:"uniqueIndex:idx_projects_user_name;not null" json:"user_id"`
	Name     string `gorm:"uniqueIndex:idx_projects_user_name;not null" json:"name"`
	Archived bool   `gorm:"default:false" json:"archived"`
}

// Tag is a free-form label attachable to timers and activities.
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Activities []Activity `gorm:"many2many:activity_tags;" json:"-"`
}
