package db

import (
	"strings"

	"github.com/mkaganek/tick/internal/models"
)

// FindOrCreateTags finds existing tags or creates new ones
func FindOrCreateTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var tag models.Tag

		// Try to find existing tag
		err := DB.Where("name = ?", name).First(&tag).Error
		if err != nil {
			// Tag doesn't exist, create it
			tag = models.Tag{Name: name}
			if err := DB.Create(&tag).Error; err != nil {
				return nil, err
			}
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// TagIDs maps tags to their ids.
func TagIDs(tags []models.Tag) []uint {
	ids := make([]uint, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids
}

// GetTagsByIDs loads tags for a list of ids.
func GetTagsByIDs(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := DB.Where("id IN ?", ids).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListTags returns all tags.
func ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := DB.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
