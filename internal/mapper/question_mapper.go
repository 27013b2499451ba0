package mapper

import (
	"encoding/json"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/model"

	"gorm.io/datatypes"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var options []string
	if len(q.Options) > 0 {
		// Stored value should always be a JSON string array; a corrupt
		// column degrades to nil options rather than failing the read.
		_ = json.Unmarshal(q.Options, &options)
	}

	return &entity.Question{
		Id:            q.Id,
		SectionId:     q.SectionId,
		QuestionType:  q.QuestionType,
		QuestionText:  q.QuestionText,
		Options:       options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	var options datatypes.JSON
	if q.Options != nil {
		raw, _ := json.Marshal(q.Options)
		options = datatypes.JSON(raw)
	}

	return &model.Question{
		Id:            q.Id,
		SectionId:     q.SectionId,
		QuestionType:  q.QuestionType,
		QuestionText:  q.QuestionText,
		Options:       options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
