package store

import (
	"context"
	"fmt"
	"strings"

	"projectassistant/backend/models"
)

type ProjectInput struct {
	ProjectName string
	ProjectType string
	Domain      string
	Status      string
	Notes       string
}

func (s *Store) AddProject(ctx context.Context, userID uint, in ProjectInput) (uint, error) {
	if strings.TrimSpace(in.ProjectName) == "" {
		return 0, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return 0, err
	}

	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = models.ProjectStatusPlanned
	}
	if in.ProjectType == "" {
		in.ProjectType = "web"
	}
	if in.Domain == "" {
		in.Domain = "general"
	}
	entry := models.ProjectHistoryEntry{
		UserID:      userID,
		ProjectName: in.ProjectName,
		ProjectType: in.ProjectType,
		Domain:      in.Domain,
		Status:      status,
		Notes:       in.Notes,
	}
	if status == "completed" {
		now := s.now()
		entry.CompletedAt = &now
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("add project: %w", err)
	}
	return entry.ID, nil
}

// GetProjectHistory lists a user's projects, most recent first.
func (s *Store) GetProjectHistory(ctx context.Context, userID uint) ([]models.ProjectHistoryEntry, error) {
	projects := []models.ProjectHistoryEntry{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
