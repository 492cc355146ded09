package store

import (
	"context"
	"fmt"

	"projectassistant/backend/models"
)

const (
	maxVCRequestLen  = 500
	maxVCResponseLen = 2000

	DefaultHistoryLimit = 10
)

func (s *Store) SaveVersionControlRequest(ctx context.Context, userID uint, request, response string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	row := models.VersionControlRequest{
		UserID:    userID,
		Request:   truncate(request, maxVCRequestLen),
		Response:  truncate(response, maxVCResponseLen),
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("save version control request: %w", err)
	}
	return nil
}

// GetVersionControlHistory returns up to limit requests, newest first.
func (s *Store) GetVersionControlHistory(ctx context.Context, userID uint, limit int) ([]models.VersionControlRequest, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history := []models.VersionControlRequest{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("list version control history: %w", err)
	}
	return history, nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
