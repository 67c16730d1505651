package db

import (
	"fmt"
	"strings"

	"github.com/mkaganek/tick/internal/models"
)

// FindOrCreateProject returns the user's project with the given name,
// creating it on first use.
func FindOrCreateProject(userID, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}

	var project models.Project
	err := DB.Where("user_id = ? AND name = ?", userID, name).First(&project).Error
	if err != nil {
		project = models.Project{UserID: userID, Name: name}
		if err := DB.Create(&project).Error; err != nil {
			return nil, err
		}
	}
	return &project, nil
}

// GetProjectByName looks up a project without creating it.
func GetProjectByName(userID, name string) (*models.Project, error) {
	var project models.Project
	err := DB.Where("user_id = ? AND name = ?", userID, name).First(&project).Error
	if err != nil {
		return nil, fmt.Errorf("project '%s' not found", name)
	}
	return &project, nil
}

// GetProjectByID retrieves a project by ID
func GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := DB.First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("project #%d not found", id)
	}
	return &project, nil
}

// ListProjects returns a user's projects, optionally including archived
// ones.
func ListProjects(userID string, includeArchived bool) ([]models.Project, error) {
	query := DB.Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	var projects []models.Project
	if err := query.Order("name ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ArchiveProject marks a project as archived; its timers and activities
// keep their association.
func ArchiveProject(userID, name string) (*models.Project, error) {
	project, err := GetProjectByName(userID, name)
	if err != nil {
		return nil, err
	}
	if err := DB.Model(project).Update("archived", true).Error; err != nil {
		return nil, err
	}
	return project, nil
}
