package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RecallSession struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SectionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserRecall string         `gorm:"type:text;not null"`
	Analysis   datatypes.JSON `gorm:"type:jsonb"`
	Score      *int
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (RecallSession) TableName() string {
	return "recall_sessions"
}
