package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SectionId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	QuestionType  string         `gorm:"type:varchar(20);not null"`
	QuestionText  string         `gorm:"type:text;not null"`
	Options       datatypes.JSON `gorm:"type:jsonb"` // MCQ only: ordered option strings
	CorrectAnswer string         `gorm:"type:text;not null"`
	Explanation   *string        `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
