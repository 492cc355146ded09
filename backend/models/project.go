package models

import (
	"time"

	"gorm.io/gorm"
)

const ProjectStatusPlanned = "planned"

type ProjectHistoryEntry struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	ProjectName string     `json:"project_name"`
	ProjectType string     `json:"project_type"`
	Domain      string     `json:"domain"`
	Status      string     `gorm:"default:planned" json:"status"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_date"`
}

func (ProjectHistoryEntry) TableName() string { return "project_history" }
