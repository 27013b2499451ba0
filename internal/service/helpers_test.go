package service

import (
	"context"
	"testing"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/entity"
	"active-recall-be/internal/model"
	"active-recall-be/internal/repository/unitofwork"
	"active-recall-be/pkg/studygen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.NoteSection{},
		&model.Question{},
		&model.RecallSession{},
	))
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

// mustCreateSection seeds a section through the real service so display
// orders and depth checks behave exactly as in production.
func mustCreateSection(t *testing.T, svc ISectionService, title, content string, parentId *uuid.UUID) *dto.SectionTreeResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), &dto.CreateSectionRequest{
		Title:    title,
		Content:  content,
		ParentId: parentId,
	})
	require.NoError(t, err)
	return res
}

func seedQuestion(t *testing.T, uow unitofwork.UnitOfWork, sectionId uuid.UUID) *entity.Question {
	t.Helper()

	q := &entity.Question{
		Id:            uuid.New(),
		SectionId:     sectionId,
		QuestionType:  entity.QuestionTypeMCQ,
		QuestionText:  "What is the powerhouse of the cell?",
		Options:       []string{"A) Mitochondria", "B) Nucleus", "C) Ribosome", "D) Golgi"},
		CorrectAnswer: "A) Mitochondria",
	}
	require.NoError(t, uow.QuestionRepository().Create(context.Background(), q))
	return q
}

func seedRecallSession(t *testing.T, uow unitofwork.UnitOfWork, sectionId uuid.UUID, score int) *entity.RecallSession {
	t.Helper()

	s := &entity.RecallSession{
		Id:         uuid.New(),
		SectionId:  sectionId,
		UserRecall: "Cells have membranes and mitochondria.",
		Analysis:   &entity.Analysis{Score: score, Summary: "Solid recall."},
		Score:      &score,
	}
	require.NoError(t, uow.RecallSessionRepository().Create(context.Background(), s))
	return s
}

// noopLogger keeps service tests quiet without touching the filesystem.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// stubGateway replaces the LLM round trip in quiz and recall tests.
type stubGateway struct {
	drafts   []studygen.QuestionDraft
	analysis *entity.Analysis
	status   studygen.Status
}

func (s *stubGateway) GenerateQuestions(ctx context.Context, notesContent string, numQuestions int, questionType, customInstructions string) ([]studygen.QuestionDraft, error) {
	return s.drafts, nil
}

func (s *stubGateway) AnalyzeRecall(ctx context.Context, originalNotes, userRecall string) (*entity.Analysis, error) {
	return s.analysis, nil
}

func (s *stubGateway) CheckStatus(ctx context.Context) studygen.Status {
	return s.status
}
