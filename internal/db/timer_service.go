package db

import (
	"github.com/mkaganek/tick/internal/models"
)

// InsertActiveTimer persists a new active-timer row with its tag
// associations.
func InsertActiveTimer(row models.ActiveTimer, tagIDs []uint) error {
	if err := DB.Create(&row).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := AddTimerTag(row.ID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateActiveTimer overwrites the mutable fields of an active-timer row.
// A map is used so zero values (paused, cleared project) are written too.
func UpdateActiveTimer(row models.ActiveTimer) error {
	return DB.Model(&models.ActiveTimer{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"description":  row.Description,
			"project_id":   row.ProjectID,
			"elapsed_time": row.ElapsedMS,
			"is_running":   row.IsRunning,
			"paused_time":  row.PausedMS,
		}).Error
}

// UpdateTimerProgress writes the elapsed-time snapshot of one timer. Called
// on every pause/resume and by the periodic sync push.
func UpdateTimerProgress(id string, elapsedMS int64, isRunning bool, pausedMS int64) error {
	return DB.Model(&models.ActiveTimer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"elapsed_time": elapsedMS,
			"is_running":   isRunning,
			"paused_time":  pausedMS,
		}).Error
}

// DeleteActiveTimer removes the row and its tag associations.
func DeleteActiveTimer(id string) error {
	if err := DB.Where("active_timer_id = ?", id).Delete(&models.ActiveTimerTag{}).Error; err != nil {
		return err
	}
	return DB.Delete(&models.ActiveTimer{}, "id = ?", id).Error
}

// ListActiveTimers returns all active-timer rows for a user together with
// the tag ids of each row.
func ListActiveTimers(userID string) ([]models.ActiveTimer, map[string][]uint, error) {
	var rows []models.ActiveTimer
	err := DB.Where("user_id = ?", userID).Order("start_time ASC").Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	tags := make(map[string][]uint, len(rows))
	if len(rows) > 0 {
		ids := make([]string, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}
		var assocs []models.ActiveTimerTag
		if err := DB.Where("active_timer_id IN ?", ids).Find(&assocs).Error; err != nil {
			return nil, nil, err
		}
		for _, a := range assocs {
			tags[a.ActiveTimerID] = append(tags[a.ActiveTimerID], a.TagID)
		}
	}
	return rows, tags, nil
}

// AddTimerTag inserts a timer-tag association if it is not already there.
func AddTimerTag(timerID string, tagID uint) error {
	var count int64
	DB.Model(&models.ActiveTimerTag{}).
		Where("active_timer_id = ? AND tag_id = ?", timerID, tagID).
		Count(&count)
	if count > 0 {
		return nil
	}
	return DB.Create(&models.ActiveTimerTag{ActiveTimerID: timerID, TagID: tagID}).Error
}

// RemoveTimerTag deletes a timer-tag association.
func RemoveTimerTag(timerID string, tagID uint) error {
	return DB.Where("active_timer_id = ? AND tag_id = ?", timerID, tagID).
		Delete(&models.ActiveTimerTag{}).Error
}

// Gateway adapts the package-level service functions to the interfaces the
// sync adapter and the feed poller accept.
type Gateway struct{}

func (Gateway) ListActive(userID string) ([]models.ActiveTimer, map[string][]uint, error) {
	return ListActiveTimers(userID)
}

func (Gateway) InsertTimer(row models.ActiveTimer, tagIDs []uint) error {
	return InsertActiveTimer(row, tagIDs)
}

func (Gateway) UpdateTimer(row models.ActiveTimer) error {
	return UpdateActiveTimer(row)
}

func (Gateway) UpdateProgress(id string, elapsedMS int64, isRunning bool, pausedMS int64) error {
	return UpdateTimerProgress(id, elapsedMS, isRunning, pausedMS)
}

func (Gateway) DeleteTimer(id string) error {
	return DeleteActiveTimer(id)
}

func (Gateway) AddTimerTag(id string, tagID uint) error {
	return AddTimerTag(id, tagID)
}

func (Gateway) RemoveTimerTag(id string, tagID uint) error {
	return RemoveTimerTag(id, tagID)
}
