package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SkillExercise struct {
	gorm.Model
	UserID        uint       `gorm:"index:idx_exercise_user_type;not null" json:"user_id"`
	ExerciseType  string     `gorm:"index:idx_exercise_user_type;not null" json:"exercise_type"`
	Description   string     `json:"description"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	AssignedAt    time.Time  `json:"date_assigned"`
	CompletedAt   *time.Time `json:"date_completed"`
	Difficulty    string     `json:"difficulty"`
	EstimatedTime string     `json:"estimated_time"`
	VideoURL      string     `json:"video_url"`
}

// AIExerciseCache holds the last generated exercise list per (user, level, field).
type AIExerciseCache struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"uniqueIndex:idx_ai_cache_key;not null"`
	SkillLevel string         `gorm:"uniqueIndex:idx_ai_cache_key;size:16;not null"`
	Field      string         `gorm:"uniqueIndex:idx_ai_cache_key;size:255;not null"`
	Exercises  datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
}

func (AIExerciseCache) TableName() string { return "ai_exercises_cache" }
