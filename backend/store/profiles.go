package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"projectassistant/backend/models"
)

type ProfileInput struct {
	CollegeName     string
	Branch          string
	Semester        string
	SkillLevel      string
	CurrentProjects string
}

// UpsertProfile writes the user's single profile row and assigns the exercise
// catalog for its skill level.
func (s *Store) UpsertProfile(ctx context.Context, userID uint, in ProfileInput) error {
	level, ok := models.ParseSkillLevel(in.SkillLevel)
	if !ok {
		return fmt.Errorf("%w: unknown skill level %q", ErrInvalidInput, in.SkillLevel)
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	var profile models.StudentProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		err = db.Model(&profile).Updates(map[string]interface{}{
			"college_name":     in.CollegeName,
			"branch":           in.Branch,
			"semester":         in.Semester,
			"skill_level":      level,
			"current_projects": in.CurrentProjects,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.StudentProfile{
			UserID:          userID,
			CollegeName:     in.CollegeName,
			Branch:          in.Branch,
			Semester:        in.Semester,
			SkillLevel:      level,
			CurrentProjects: in.CurrentProjects,
		}
		err = db.Create(&profile).Error
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return s.assignExercises(ctx, userID, level)
}

func (s *Store) assignExercises(ctx context.Context, userID uint, level models.SkillLevel) error {
	db := s.db.WithContext(ctx)
	now := s.now()
	for _, entry := range catalogFor(level) {
		row := models.SkillExercise{
			UserID:        userID,
			ExerciseType:  entry.Type,
			Description:   entry.Description,
			AssignedAt:    now,
			Difficulty:    entry.Difficulty,
			EstimatedTime: entry.EstimatedTime,
			VideoURL:      entry.VideoURL,
		}

		var err error
		if s.policy == AssignmentAppend {
			err = db.Create(&row).Error
		} else {
			var existing models.SkillExercise
			err = db.Where("user_id = ? AND exercise_type = ?", userID, entry.Type).
				Attrs(row).
				FirstOrCreate(&existing).Error
		}
		if err != nil {
			return fmt.Errorf("assign exercise %s: %w", entry.Type, err)
		}
	}
	return nil
}

func (s *Store) GetProfile(ctx context.Context, userID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}
