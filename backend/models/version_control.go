package models

import "time"

type VersionControlRequest struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Request   string    `gorm:"size:500" json:"request"`
	Response  string    `gorm:"size:2000" json:"response"`
	CreatedAt time.Time `json:"date"`
}

func (VersionControlRequest) TableName() string { return "version_control_history" }
