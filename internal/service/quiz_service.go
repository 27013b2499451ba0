package service

import (
	"context"
	"strings"
	"time"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/entity"
	"active-recall-be/internal/pkg/logger"
	"active-recall-be/internal/repository/contract"
	"active-recall-be/internal/repository/specification"
	"active-recall-be/internal/repository/unitofwork"
	"active-recall-be/pkg/studygen"

	"github.com/google/uuid"
)

const defaultNumQuestions = 5

type IQuizService interface {
	Generate(ctx context.Context, req *dto.GenerateQuizRequest) ([]*dto.QuestionResponse, error)
	ListBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) ([]*dto.QuestionResponse, error)
	CheckAnswer(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
	ClearBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) error
}

type quizService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator IContentAggregator
	gateway    studygen.IGateway
	logger     logger.ILogger
}

func NewQuizService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator IContentAggregator,
	gateway studygen.IGateway,
	sysLogger logger.ILogger,
) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		gateway:    gateway,
		logger:     sysLogger,
	}
}

// expandSectionIds widens a section id to include its direct children when
// requested. The depth cap keeps this a single extra query.
func expandSectionIds(ctx context.Context, repo contract.NoteSectionRepository, sectionId uuid.UUID, includeSubsections bool) ([]uuid.UUID, error) {
	ids := []uuid.UUID{sectionId}
	if !includeSubsections {
		return ids, nil
	}

	children, err := repo.FindAll(ctx, specification.ByParentID{ParentID: &sectionId})
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		ids = append(ids, child.Id)
	}
	return ids, nil
}

// Generate runs aggregation, asks the model for questions, and persists the
// drafts. All generated questions are attributed to the first requested
// section id, even for multi-section input.
func (c *quizService) Generate(ctx context.Context, req *dto.GenerateQuizRequest) ([]*dto.QuestionResponse, error) {
	if len(req.SectionIds) == 0 {
		return nil, ErrNoSectionsSelected
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = defaultNumQuestions
	}
	questionType := req.QuestionType
	if questionType == "" {
		questionType = entity.QuestionTypeMixed
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

	drafts, err := c.gateway.GenerateQuestions(ctx, content, numQuestions, questionType, req.CustomInstructions)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrGenerationFailed
	}

	titlesById := make(map[uuid.UUID]string, len(resolved))
	for _, s := range resolved {
		titlesById[s.Id] = s.Title
	}

	primarySectionId := req.SectionIds[0]

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	saved := make([]*entity.Question, 0, len(drafts))
	for _, draft := range drafts {
		questionType := draft.QuestionType
		if questionType == "" {
			questionType = entity.QuestionTypeFreeResponse
		}

		var explanation *string
		if draft.Explanation != "" {
			e := draft.Explanation
			explanation = &e
		}

		question := entity.Question{
			Id:            uuid.New(),
			SectionId:     primarySectionId,
			QuestionType:  questionType,
			QuestionText:  draft.QuestionText,
			Options:       draft.Options,
			CorrectAnswer: draft.CorrectAnswer,
			Explanation:   explanation,
			CreatedAt:     time.Now(),
		}
		if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
			return nil, err
		}
		saved = append(saved, &question)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.logger.Info("quiz", "Generated questions", map[string]interface{}{
		"section_id": primarySectionId.String(),
		"count":      len(saved),
	})

	result := make([]*dto.QuestionResponse, 0, len(saved))
	for _, q := range saved {
		result = append(result, &dto.QuestionResponse{
			Id:            q.Id,
			SectionId:     q.SectionId,
			SectionTitle:  titlesById[q.SectionId],
			QuestionType:  q.QuestionType,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			CreatedAt:     q.CreatedAt,
		})
	}
	return result, nil
}

func (c *quizService) ListBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) ([]*dto.QuestionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	ids, err := expandSectionIds(ctx, uow.NoteSectionRepository(), sectionId, includeSubsections)
	if err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.BySectionIDs{SectionIDs: ids})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, &dto.QuestionResponse{
			Id:            q.Id,
			SectionId:     q.SectionId,
			QuestionType:  q.QuestionType,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			CreatedAt:     q.CreatedAt,
		})
	}
	return result, nil
}

// CheckAnswer grades an answer against the stored question. MCQ matching is
// deliberately loose: a bare option letter and the full option text both
// count, compared by first character either way around. Free-response answers
// are never auto-graded.
func (c *quizService) CheckAnswer(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.QuestionId})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	isCorrect := false
	if question.QuestionType == entity.QuestionTypeMCQ {
		userAns := strings.ToUpper(strings.TrimSpace(req.UserAnswer))
		correctAns := strings.ToUpper(strings.TrimSpace(question.CorrectAnswer))
		if userAns != "" && correctAns != "" {
			isCorrect = strings.HasPrefix(userAns, correctAns[:1]) || strings.HasPrefix(correctAns, userAns[:1])
		}
	}

	return &dto.CheckAnswerResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		QuestionType:  question.QuestionType,
	}, nil
}

func (c *quizService) ClearBySection(ctx context.Context, sectionId uuid.UUID, includeSubsections bool) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	ids, err := expandSectionIds(ctx, uow.NoteSectionRepository(), sectionId, includeSubsections)
	if err != nil {
		return err
	}

	return uow.QuestionRepository().DeleteBySectionIds(ctx, ids)
}
