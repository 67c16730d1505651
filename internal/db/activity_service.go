package db

import (
	"time"

	"github.com/mkaganek/tick/internal/models"
	"github.com/mkaganek/tick/internal/timer"
)

// ActivityRecorder is the completion sink: it turns a stopped timer's
// snapshot into a permanent activity row owned by the given user.
type ActivityRecorder struct {
	UserID string
}

func (r ActivityRecorder) Complete(snap timer.Snapshot) error {
	_, err := RecordActivity(r.UserID, snap)
	return err
}

// RecordActivity writes a completed activity with its tag associations.
func RecordActivity(userID string, snap timer.Snapshot) (*models.Activity, error) {
	activity := models.Activity{
		UserID:      userID,
		Description: snap.Name,
		ProjectID:   snap.ProjectID,
		DurationMS:  snap.Duration.Milliseconds(),
		StartedAt:   snap.StartedAt,
		EndedAt:     snap.EndedAt,
	}

	if len(snap.TagIDs) > 0 {
		var tags []models.Tag
		if err := DB.Where("id IN ?", snap.TagIDs).Find(&tags).Error; err != nil {
			return nil, err
		}
		activity.Tags = tags
	}

	if err := DB.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListActivities returns a user's completed activities, newest first,
// optionally bounded by start instant.
func ListActivities(userID string, from, to *time.Time) ([]models.Activity, error) {
	query := DB.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("started_at < ?", *to)
	}

	var activities []models.Activity
	err := query.
		Preload("Tags").
		Preload("Project").
		Order("started_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// SumDurations totals the duration of a user's completed activities in the
// given range. This is the only aggregate the tracker computes.
func SumDurations(userID string, from, to *time.Time) (int64, error) {
	query := DB.Model(&models.Activity{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("started_at < ?", *to)
	}

	var total *int64
	if err := query.Select("SUM(duration)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
