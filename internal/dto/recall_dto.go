package dto

import (
	"time"

	"active-recall-be/internal/entity"

	"github.com/google/uuid"
)

type AnalyzeRecallRequest struct {
	SectionIds         []uuid.UUID `json:"section_ids" validate:"required,min=1"`
	UserRecall         string      `json:"user_recall" validate:"required"`
	IncludeSubsections *bool       `json:"include_subsections"` // nil defaults to true
}

type RecallSessionResponse struct {
	Id           uuid.UUID        `json:"id"`
	SectionId    uuid.UUID        `json:"section_id"`
	SectionTitle *string          `json:"section_title"`
	UserRecall   string           `json:"user_recall"`
	Analysis     *entity.Analysis `json:"analysis"`
	Score        *int             `json:"score"`
	CreatedAt    time.Time        `json:"created_at"`
}
