package service

import (
	"context"
	"strings"
	"time"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/entity"
	"active-recall-be/internal/pkg/logger"
	"active-recall-be/internal/repository/specification"
	"active-recall-be/internal/repository/unitofwork"
	"active-recall-be/pkg/studygen"

	"github.com/google/uuid"
)

type IRecallService interface {
	Analyze(ctx context.Context, req *dto.AnalyzeRecallRequest) (*dto.RecallSessionResponse, error)
	HistoryBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) ([]*dto.RecallSessionResponse, error)
	Show(ctx context.Context, sessionId uuid.UUID) (*dto.RecallSessionResponse, error)
}

type recallService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator IContentAggregator
	gateway    studygen.IGateway
	logger     logger.ILogger
}

func NewRecallService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator IContentAggregator,
	gateway studygen.IGateway,
	sysLogger logger.ILogger,
) IRecallService {
	return &recallService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		gateway:    gateway,
		logger:     sysLogger,
	}
}

// Analyze grades one recall attempt against the aggregated notes and
// persists the session. The session is keyed to the first resolved section;
// a gateway parse failure degrades to the fallback analysis rather than
// failing the submission.
func (c *recallService) Analyze(ctx context.Context, req *dto.AnalyzeRecallRequest) (*dto.RecallSessionResponse, error) {
	if len(req.SectionIds) == 0 {
		return nil, ErrNoSectionsSelected
	}
	if strings.TrimSpace(req.UserRecall) == "" {
		return nil, ErrEmptyRecall
	}

	includeSubsections := true
	if req.IncludeSubsections != nil {
		includeSubsections = *req.IncludeSubsections
	}

	resolved, err := c.aggregator.Resolve(ctx, req.SectionIds, includeSubsections)
	if err != nil {
		return nil, err
	}

	content, err := c.aggregator.Collect(resolved)
	if err != nil {
		return nil, err
	}

	analysis, err := c.gateway.AnalyzeRecall(ctx, content, req.UserRecall)
	if err != nil {
		return nil, err
	}

	primarySection := resolved[0]
	score := analysis.Score

	session := entity.RecallSession{
		Id:         uuid.New(),
		SectionId:  primarySection.Id,
		UserRecall: req.UserRecall,
		Analysis:   analysis,
		Score:      &score,
		CreatedAt:  time.Now(),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RecallSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	c.logger.Info("recall", "Recall session analyzed", map[string]interface{}{
		"session_id": session.Id.String(),
		"section_id": session.SectionId.String(),
		"score":      score,
	})

	title := primarySection.Title
	return &dto.RecallSessionResponse{
		Id:           session.Id,
		SectionId:    session.SectionId,
		SectionTitle: &title,
		UserRecall:   session.UserRecall,
		Analysis:     session.Analysis,
		Score:        session.Score,
		CreatedAt:    session.CreatedAt,
	}, nil
}

func (c *recallService) HistoryBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) ([]*dto.RecallSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	ids, err := expandSectionIds(ctx, uow.NoteSectionRepository(), sectionId, includeSubsections)
	if err != nil {
		return nil, err
	}

	sessions, err := uow.RecallSessionRepository().FindAll(ctx,
		specification.BySectionIDs{SectionIDs: ids},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RecallSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, &dto.RecallSessionResponse{
			Id:         s.Id,
			SectionId:  s.SectionId,
			UserRecall: s.UserRecall,
			Analysis:   s.Analysis,
			Score:      s.Score,
			CreatedAt:  s.CreatedAt,
		})
	}
	return result, nil
}

// Show returns a single session with a best-effort section title; the title
// is nil when the owning section has been deleted since.
func (c *recallService) Show(ctx context.Context, sessionId uuid.UUID) (*dto.RecallSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.RecallSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	var title *string
	section, err := uow.NoteSectionRepository().FindOne(ctx, specification.ByID{ID: session.SectionId})
	if err != nil {
		return nil, err
	}
	if section != nil {
		title = &section.Title
	}

	return &dto.RecallSessionResponse{
		Id:           session.Id,
		SectionId:    session.SectionId,
		SectionTitle: title,
		UserRecall:   session.UserRecall,
		Analysis:     session.Analysis,
		Score:        session.Score,
		CreatedAt:    session.CreatedAt,
	}, nil
}
