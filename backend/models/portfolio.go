package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PortfolioRecord struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (PortfolioRecord) TableName() string { return "portfolio_data" }

type PortfolioTemplate struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Type   string `gorm:"size:32;default:basic" json:"type"`
	HTML   string `gorm:"type:text" json:"-"`
	CSS    string `gorm:"type:text" json:"-"`
	Active bool   `gorm:"default:true" json:"active"`
}
