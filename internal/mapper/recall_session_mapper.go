package mapper

import (
	"encoding/json"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/model"

	"gorm.io/datatypes"
)

type RecallSessionMapper struct{}

func NewRecallSessionMapper() *RecallSessionMapper {
	return &RecallSessionMapper{}
}

func (m *RecallSessionMapper) ToEntity(s *model.RecallSession) *entity.RecallSession {
	if s == nil {
		return nil
	}

	var analysis *entity.Analysis
	if len(s.Analysis) > 0 {
		var a entity.Analysis
		if err := json.Unmarshal(s.Analysis, &a); err == nil {
			analysis = &a
		}
	}

	return &entity.RecallSession{
		Id:         s.Id,
		SectionId:  s.SectionId,
		UserRecall: s.UserRecall,
		Analysis:   analysis,
		Score:      s.Score,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *RecallSessionMapper) ToModel(s *entity.RecallSession) *model.RecallSession {
	if s == nil {
		return nil
	}

	var analysis datatypes.JSON
	if s.Analysis != nil {
		raw, _ := json.Marshal(s.Analysis)
		analysis = datatypes.JSON(raw)
	}

	return &model.RecallSession{
		Id:         s.Id,
		SectionId:  s.SectionId,
		UserRecall: s.UserRecall,
		Analysis:   analysis,
		Score:      s.Score,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *RecallSessionMapper) ToEntities(sessions []*model.RecallSession) []*entity.RecallSession {
	entities := make([]*entity.RecallSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
