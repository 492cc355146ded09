package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"projectassistant/backend/models"
)

func (s *Store) GetSkillExercises(ctx context.Context, userID uint) ([]models.SkillExercise, error) {
	exercises := []models.SkillExercise{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// MarkExerciseComplete completes the oldest matching row. Completing an already
// completed exercise succeeds without touching its timestamp.
func (s *Store) MarkExerciseComplete(ctx context.Context, userID uint, exerciseType string) error {
	db := s.db.WithContext(ctx)
	var exercise models.SkillExercise
	err := db.Where("user_id = ? AND exercise_type = ?", userID, exerciseType).
		Order("id ASC").
		First(&exercise).Error
	if err != nil {
		return notFound(err)
	}
	if exercise.Completed {
		return nil
	}

	now := s.now()
	err = db.Model(&exercise).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}).Error
	if err != nil {
		return fmt.Errorf("complete exercise: %w", err)
	}
	return nil
}

// SetExerciseCache replaces the cached exercise list for (user, level, field).
func (s *Store) SetExerciseCache(ctx context.Context, userID uint, level, field string, exercises interface{}) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	raw, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("encode exercises: %w", err)
	}
	row := models.AIExerciseCache{
		UserID:     userID,
		SkillLevel: level,
		Field:      field,
		Exercises:  datatypes.JSON(raw),
		CreatedAt:  s.now(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_level"}, {Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"exercises", "created_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write exercise cache: %w", err)
	}
	return nil
}

// GetExerciseCache decodes a fresh cache row into out. Stale rows report a miss
// and stay in place until the next write.
func (s *Store) GetExerciseCache(ctx context.Context, userID uint, level, field string, out interface{}) (bool, error) {
	var row models.AIExerciseCache
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND skill_level = ? AND field = ?", userID, level, field).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read exercise cache: %w", err)
	}

	if s.now().Sub(row.CreatedAt) > s.cacheTTL {
		return false, nil
	}
	if err := json.Unmarshal(row.Exercises, out); err != nil {
		return false, fmt.Errorf("decode exercise cache: %w", err)
	}
	return true, nil
}
