package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeMCQ          = "mcq"
	QuestionTypeFreeResponse = "free_response"
	QuestionTypeMixed        = "mixed" // generation filter only, never persisted
)

type Question struct {
	Id            uuid.UUID
	SectionId     uuid.UUID
	QuestionType  string
	QuestionText  string
	Options       []string // nil for free_response
	CorrectAnswer string
	Explanation   *string
	CreatedAt     time.Time
}
