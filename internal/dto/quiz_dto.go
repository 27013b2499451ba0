package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateQuizRequest struct {
	SectionIds         []uuid.UUID `json:"section_ids" validate:"required,min=1"`
	NumQuestions       int         `json:"num_questions" validate:"omitempty,min=1,max=50"`
	QuestionType       string      `json:"question_type" validate:"omitempty,oneof=mcq free_response mixed"`
	CustomInstructions string      `json:"custom_instructions"`
	IncludeSubsections *bool       `json:"include_subsections"` // nil defaults to true
}

type QuestionResponse struct {
	Id            uuid.UUID `json:"id"`
	SectionId     uuid.UUID `json:"section_id"`
	SectionTitle  string    `json:"section_title,omitempty"`
	QuestionType  string    `json:"question_type"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   *string   `json:"explanation"`
	CreatedAt     time.Time `json:"created_at"`
}

type CheckAnswerRequest struct {
	QuestionId uuid.UUID `json:"question_id" validate:"required"`
	UserAnswer string    `json:"user_answer" validate:"required"`
}

type CheckAnswerResponse struct {
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   *string `json:"explanation"`
	QuestionType  string  `json:"question_type"`
}
