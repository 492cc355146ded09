package models

import (
	"strings"

	"gorm.io/gorm"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ParseSkillLevel normalizes case and whitespace; an empty value means beginner.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	level := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case "":
		return SkillBeginner, true
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return level, true
	}
	return "", false
}

type StudentProfile struct {
	gorm.Model
	UserID          uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CollegeName     string     `json:"college_name"`
	Branch          string     `json:"branch"`
	Semester        string     `json:"semester"`
	SkillLevel      SkillLevel `gorm:"size:16;default:beginner" json:"skill_level"`
	CurrentProjects string     `json:"current_projects"`
}
