package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteSection struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParentId     *uuid.UUID `gorm:"type:uuid;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Content      string     `gorm:"type:text"`
	DisplayOrder int        `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (NoteSection) TableName() string {
	return "note_sections"
}
