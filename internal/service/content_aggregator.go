package service

import (
	"context"
	"fmt"
	"strings"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/repository/specification"
	"active-recall-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IContentAggregator resolves a caller-chosen set of sections into one
// prompt-ready text block. Shared by quiz generation and recall analysis.
type IContentAggregator interface {
	Resolve(ctx context.Context, sectionIds []uuid.UUID, includeSubsections bool) ([]*entity.NoteSection, error)
	Collect(sections []*entity.NoteSection) (string, error)
}

type contentAggregator struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContentAggregator(uowFactory unitofwork.RepositoryFactory) IContentAggregator {
	return &contentAggregator{
		uowFactory: uowFactory,
	}
}

// Resolve fetches each requested section in caller order, appending direct
// children when includeSubsections is set. Unknown ids are skipped;
// duplicates keep their first-seen position. Fails only when nothing
// resolves at all.
func (c *contentAggregator) Resolve(ctx context.Context, sectionIds []uuid.UUID, includeSubsections bool) ([]*entity.NoteSection, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteSectionRepository()

	seen := make(map[uuid.UUID]bool)
	resolved := make([]*entity.NoteSection, 0, len(sectionIds))

	add := func(s *entity.NoteSection) {
		if !seen[s.Id] {
			seen[s.Id] = true
			resolved = append(resolved, s)
		}
	}

	for _, id := range sectionIds {
		section, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if section == nil {
			continue
		}
		add(section)

		if includeSubsections {
			children, err := repo.FindAll(ctx,
				specification.ByParentID{ParentID: &section.Id},
				specification.SiblingOrder{},
			)
			if err != nil {
				return nil, err
			}
			for _, child := range children {
				add(child)
			}
		}
	}

	if len(resolved) == 0 {
		return nil, ErrNoSectionsFound
	}
	return resolved, nil
}

// Collect concatenates the non-blank sections as "## title\ncontent" blocks
// separated by blank lines. Blank-content sections are skipped entirely.
func (c *contentAggregator) Collect(sections []*entity.NoteSection) (string, error) {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		if strings.TrimSpace(section.Content) == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("## %s\n%s", section.Title, section.Content))
	}

	combined := strings.Join(parts, "\n\n")
	if strings.TrimSpace(combined) == "" {
		return "", ErrEmptyContent
	}
	return combined, nil
}
