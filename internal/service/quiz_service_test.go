package service

import (
	"context"
	"testing"

	"active-recall-be/internal/dto"
	"active-recall-be/internal/entity"
	"active-recall-be/pkg/studygen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizFixture(t *testing.T, gateway studygen.IGateway) (IQuizService, ISectionService, *dto.SectionTreeResponse) {
	t.Helper()

	factory := newTestFactory(t)
	sections := NewSectionService(factory)
	quiz := NewQuizService(factory, NewContentAggregator(factory), gateway, noopLogger{})
	top := mustCreateSection(t, sections, "Biology", "Cells are the unit of life.", nil)
	return quiz, sections, top
}

func sampleDrafts() []studygen.QuestionDraft {
	return []studygen.QuestionDraft{
		{
			QuestionType:  entity.QuestionTypeMCQ,
			QuestionText:  "What is the capital of France?",
			Options:       []string{"A) Paris", "B) London", "C) Berlin", "D) Madrid"},
			CorrectAnswer: "A) Paris",
			Explanation:   "Paris has been the capital since 987.",
		},
		{
			QuestionType:  entity.QuestionTypeFreeResponse,
			QuestionText:  "Describe the cell membrane.",
			CorrectAnswer: "A lipid bilayer that controls what enters and leaves the cell.",
		},
		{
			QuestionText:  "Name one organelle.",
			CorrectAnswer: "Mitochondria",
		},
	}
}

func TestGenerate_PersistsDraftsOnFirstRequestedSection(t *testing.T) {
	quiz, sections, top := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})
	other := mustCreateSection(t, sections, "Chemistry", "Atoms bond.", nil)

	generated, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{top.Id, other.Id},
	})
	require.NoError(t, err)
	require.Len(t, generated, 3)

	for _, q := range generated {
		assert.Equal(t, top.Id, q.SectionId)
		assert.Equal(t, "Biology", q.SectionTitle)
	}

	// Draft without a type falls back to free_response.
	assert.Equal(t, entity.QuestionTypeFreeResponse, generated[2].QuestionType)

	persisted, err := quiz.ListBySection(context.Background(), top.Id, false)
	require.NoError(t, err)
	assert.Len(t, persisted, 3)
}

func TestGenerate_EmptyDraftsFails(t *testing.T) {
	quiz, _, top := newQuizFixture(t, &stubGateway{drafts: []studygen.QuestionDraft{}})

	_, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{top.Id},
	})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerate_NoSectionsSelected(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})

	_, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{})
	assert.ErrorIs(t, err, ErrNoSectionsSelected)
}

func TestGenerate_UnknownSections(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})

	_, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrNoSectionsFound)
}

func TestGenerate_BlankContentFails(t *testing.T) {
	factory := newTestFactory(t)
	sections := NewSectionService(factory)
	quiz := NewQuizService(factory, NewContentAggregator(factory), &stubGateway{drafts: sampleDrafts()}, noopLogger{})
	empty := mustCreateSection(t, sections, "Empty", "   ", nil)

	_, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{empty.Id},
	})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestCheckAnswer_MCQMatching(t *testing.T) {
	quiz, _, top := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})

	generated, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{top.Id},
	})
	require.NoError(t, err)

	mcq := generated[0]
	cases := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"bare letter lowercase", "a", true},
		{"bare letter uppercase", "A", true},
		{"full option text", "A) Paris", true},
		{"padded answer", "  a  ", true},
		{"wrong letter", "B", false},
		{"wrong option text", "B) London", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := quiz.CheckAnswer(context.Background(), &dto.CheckAnswerRequest{
				QuestionId: mcq.Id,
				UserAnswer: tc.answer,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.correct, res.IsCorrect)
			assert.Equal(t, "A) Paris", res.CorrectAnswer)
		})
	}
}

func TestCheckAnswer_FreeResponseNeverAutoGraded(t *testing.T) {
	quiz, _, top := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})

	generated, err := quiz.Generate(context.Background(), &dto.GenerateQuizRequest{
		SectionIds: []uuid.UUID{top.Id},
	})
	require.NoError(t, err)

	free := generated[1]
	res, err := quiz.CheckAnswer(context.Background(), &dto.CheckAnswerRequest{
		QuestionId: free.Id,
		UserAnswer: free.CorrectAnswer,
	})
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, entity.QuestionTypeFreeResponse, res.QuestionType)
}

func TestCheckAnswer_QuestionNotFound(t *testing.T) {
	quiz, _, _ := newQuizFixture(t, &stubGateway{drafts: sampleDrafts()})

	_, err := quiz.CheckAnswer(context.Background(), &dto.CheckAnswerRequest{
		QuestionId: uuid.New(),
		UserAnswer: "A",
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestListAndClearBySection_WithSubsections(t *testing.T) {
	factory := newTestFactory(t)
	sections := NewSectionService(factory)
	quiz := NewQuizService(factory, NewContentAggregator(factory), &stubGateway{}, noopLogger{})

	top := mustCreateSection(t, sections, "Biology", "x", nil)
	child := mustCreateSection(t, sections, "Cells", "y", &top.Id)

	uow := factory.NewUnitOfWork(context.Background())
	seedQuestion(t, uow, top.Id)
	seedQuestion(t, uow, child.Id)

	parentOnly, err := quiz.ListBySection(context.Background(), top.Id, false)
	require.NoError(t, err)
	assert.Len(t, parentOnly, 1)

	withChildren, err := quiz.ListBySection(context.Background(), top.Id, true)
	require.NoError(t, err)
	assert.Len(t, withChildren, 2)

	require.NoError(t, quiz.ClearBySection(context.Background(), top.Id, true))

	remaining, err := quiz.ListBySection(context.Background(), top.Id, true)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
