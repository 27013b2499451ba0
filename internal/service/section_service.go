package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/entity"
	"active-recall-be/internal/repository/specification"
	"active-recall-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISectionService interface {
	List(ctx context.Context, flat bool) ([]*dto.SectionTreeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.SectionTreeResponse, error)
	Create(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionTreeResponse, error)
	Update(ctx context.Context, req *dto.UpdateSectionRequest) (*dto.SectionTreeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, id uuid.UUID, newOrder int) error
	ExportAll(ctx context.Context) (*dto.ExportAllResponse, error)
	ExportOne(ctx context.Context, id uuid.UUID) (*dto.ExportSectionResponse, string, error)
	Import(ctx context.Context, req *dto.ImportSectionsRequest) (*dto.ImportSectionsResponse, error)
}

type sectionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSectionService(uowFactory unitofwork.RepositoryFactory) ISectionService {
	return &sectionService{
		uowFactory: uowFactory,
	}
}

// buildTree materializes a section and the children found in the index into
// the nested response shape. Children arrive pre-ordered; the depth cap means
// grandchildren never exist, so one level of recursion terminates.
func buildTree(section *entity.NoteSection, childrenByParent map[uuid.UUID][]*entity.NoteSection) *dto.SectionTreeResponse {
	children := childrenByParent[section.Id]
	childNodes := make([]*dto.SectionTreeResponse, 0, len(children))
	for _, child := range children {
		childNodes = append(childNodes, buildTree(child, childrenByParent))
	}

	return &dto.SectionTreeResponse{
		Id:           section.Id,
		ParentId:     section.ParentId,
		Title:        section.Title,
		Content:      section.Content,
		DisplayOrder: section.DisplayOrder,
		CreatedAt:    section.CreatedAt,
		UpdatedAt:    section.UpdatedAt,
		Children:     childNodes,
	}
}

// groupByParent builds the parent -> ordered children index from a slice that
// is already in sibling order.
func groupByParent(sections []*entity.NoteSection) map[uuid.UUID][]*entity.NoteSection {
	index := make(map[uuid.UUID][]*entity.NoteSection)
	for _, s := range sections {
		if s.ParentId != nil {
			index[*s.ParentId] = append(index[*s.ParentId], s)
		}
	}
	return index
}

func (c *sectionService) List(ctx context.Context, flat bool) ([]*dto.SectionTreeResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.NoteSectionRepository().FindAll(ctx, specification.FlatOrder{})
	if err != nil {
		return nil, err
	}
	childrenByParent := groupByParent(all)

	result := make([]*dto.SectionTreeResponse, 0)
	for _, s := range all {
		if flat || s.ParentId == nil {
			result = append(result, buildTree(s, childrenByParent))
		}
	}
	return result, nil
}

func (c *sectionService) Show(ctx context.Context, id uuid.UUID) (*dto.SectionTreeResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.NoteSectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}

	children, err := uow.NoteSectionRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &id},
		specification.SiblingOrder{},
	)
	if err != nil {
		return nil, err
	}

	index := map[uuid.UUID][]*entity.NoteSection{id: children}
	return buildTree(section, index), nil
}

func (c *sectionService) Create(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionTreeResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteSectionRepository()

	if req.ParentId != nil {
		parent, err := repo.FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
		if parent.ParentId != nil {
			return nil, ErrInvalidDepth
		}
	}

	// Append to the end of the sibling list
	siblingCount, err := repo.Count(ctx, specification.ByParentID{ParentID: req.ParentId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	section := entity.NoteSection{
		Id:           uuid.New(),
		ParentId:     req.ParentId,
		Title:        req.Title,
		Content:      req.Content,
		DisplayOrder: int(siblingCount),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Create(ctx, &section); err != nil {
		return nil, err
	}

	return buildTree(&section, nil), nil
}

func (c *sectionService) Update(ctx context.Context, req *dto.UpdateSectionRequest) (*dto.SectionTreeResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteSectionRepository()

	section, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
	if req.DisplayOrder != nil {
		section.DisplayOrder = *req.DisplayOrder
	}
	if req.ParentId != nil {
		if *req.ParentId == req.Id {
			return nil, ErrInvalidSelfParent
		}
		parent, err := repo.FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
		if parent.ParentId != nil {
			return nil, ErrInvalidDepth
		}
		section.ParentId = req.ParentId
	}

	section.UpdatedAt = time.Now()
	if err := repo.Update(ctx, section); err != nil {
		return nil, err
	}

	children, err := repo.FindAll(ctx,
		specification.ByParentID{ParentID: &section.Id},
		specification.SiblingOrder{},
	)
	if err != nil {
		return nil, err
	}

	index := map[uuid.UUID][]*entity.NoteSection{section.Id: children}
	return buildTree(section, index), nil
}

// Delete removes a section, its children, and every question and recall
// session owned by any of them, in one transaction.
func (c *sectionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.NoteSectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if section == nil {
		return ErrSectionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.NoteSectionRepository()

	children, err := repo.FindAll(ctx, specification.ByParentID{ParentID: &id})
	if err != nil {
		return err
	}

	doomed := []uuid.UUID{id}
	for _, child := range children {
		doomed = append(doomed, child.Id)
	}

	if err := uow.QuestionRepository().DeleteBySectionIds(ctx, doomed); err != nil {
		return err
	}
	if err := uow.RecallSessionRepository().DeleteBySectionIds(ctx, doomed); err != nil {
		return err
	}
	for _, child := range children {
		if err := repo.Delete(ctx, child.Id); err != nil {
			return err
		}
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// Reorder moves a section within its sibling list and renumbers the whole
// list 0..n-1. The full renumbering keeps display_order dense regardless of
// what state the rows were in before.
func (c *sectionService) Reorder(ctx context.Context, id uuid.UUID, newOrder int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.NoteSectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if section == nil {
		return ErrSectionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.NoteSectionRepository()

	siblings, err := repo.FindAll(ctx,
		specification.ByParentID{ParentID: section.ParentId},
		specification.SiblingOrder{},
	)
	if err != nil {
		return err
	}

	reordered := make([]*entity.NoteSection, 0, len(siblings))
	for _, s := range siblings {
		if s.Id != id {
			reordered = append(reordered, s)
		}
	}

	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > len(reordered) {
		newOrder = len(reordered)
	}

	reordered = append(reordered[:newOrder], append([]*entity.NoteSection{section}, reordered[newOrder:]...)...)

	for i, s := range reordered {
		if s.DisplayOrder == i {
			continue
		}
		s.DisplayOrder = i
		if err := repo.Update(ctx, s); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func exportNode(section *entity.NoteSection, childrenByParent map[uuid.UUID][]*entity.NoteSection) *dto.ExportSectionNode {
	children := childrenByParent[section.Id]
	childNodes := make([]*dto.ExportSectionNode, 0, len(children))
	for _, child := range children {
		childNodes = append(childNodes, exportNode(child, childrenByParent))
	}

	return &dto.ExportSectionNode{
		Title:        section.Title,
		Content:      section.Content,
		DisplayOrder: section.DisplayOrder,
		CreatedAt:    section.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    section.UpdatedAt.UTC().Format(time.RFC3339),
		Children:     childNodes,
	}
}

func (c *sectionService) ExportAll(ctx context.Context) (*dto.ExportAllResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.NoteSectionRepository().FindAll(ctx, specification.FlatOrder{})
	if err != nil {
		return nil, err
	}
	childrenByParent := groupByParent(all)

	sections := make([]*dto.ExportSectionNode, 0)
	for _, s := range all {
		if s.ParentId == nil {
			sections = append(sections, exportNode(s, childrenByParent))
		}
	}

	return &dto.ExportAllResponse{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sections:   sections,
	}, nil
}

// ExportOne exports a single section with its children. The second return
// value is the suggested download filename, derived from the title.
func (c *sectionService) ExportOne(ctx context.Context, id uuid.UUID) (*dto.ExportSectionResponse, string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.NoteSectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, "", err
	}
	if section == nil {
		return nil, "", ErrSectionNotFound
	}

	children, err := uow.NoteSectionRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &id},
		specification.SiblingOrder{},
	)
	if err != nil {
		return nil, "", err
	}

	index := map[uuid.UUID][]*entity.NoteSection{id: children}
	filename := fmt.Sprintf("notes_%s.json", strings.ReplaceAll(section.Title, " ", "_"))

	return &dto.ExportSectionResponse{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Section:    exportNode(section, index),
	}, filename, nil
}

// Import recreates sections from a portable document, depth first, so every
// child references an already-persisted parent id. Ids are reassigned.
func (c *sectionService) Import(ctx context.Context, req *dto.ImportSectionsRequest) (*dto.ImportSectionsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.NoteSectionRepository()
	imported := 0

	var importOne func(node *dto.ImportSectionNode, parentId *uuid.UUID) error
	importOne = func(node *dto.ImportSectionNode, parentId *uuid.UUID) error {
		now := time.Now()
		section := entity.NoteSection{
			Id:           uuid.New(),
			ParentId:     parentId,
			Title:        node.Title,
			Content:      node.Content,
			DisplayOrder: node.DisplayOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(ctx, &section); err != nil {
			return err
		}
		imported++

		for _, child := range node.Children {
			if err := importOne(child, &section.Id); err != nil {
				return err
			}
		}
		return nil
	}

	for _, node := range req.Sections {
		if err := importOne(node, nil); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ImportSectionsResponse{ImportedCount: imported}, nil
}
