package mapper

import (
	"active-recall-be/internal/entity"
	"active-recall-be/internal/model"
)

type NoteSectionMapper struct{}

func NewNoteSectionMapper() *NoteSectionMapper {
	return &NoteSectionMapper{}
}

func (m *NoteSectionMapper) ToEntity(s *model.NoteSection) *entity.NoteSection {
	if s == nil {
		return nil
	}

	return &entity.NoteSection{
		Id:           s.Id,
		ParentId:     s.ParentId,
		Title:        s.Title,
		Content:      s.Content,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *NoteSectionMapper) ToModel(s *entity.NoteSection) *model.NoteSection {
	if s == nil {
		return nil
	}

	return &model.NoteSection{
		Id:           s.Id,
		ParentId:     s.ParentId,
		Title:        s.Title,
		Content:      s.Content,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *NoteSectionMapper) ToEntities(sections []*model.NoteSection) []*entity.NoteSection {
	entities := make([]*entity.NoteSection, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *NoteSectionMapper) ToModels(sections []*entity.NoteSection) []*model.NoteSection {
	models := make([]*model.NoteSection, len(sections))
	for i, s := range sections {
		models[i] = m.ToModel(s)
	}
	return models
}
