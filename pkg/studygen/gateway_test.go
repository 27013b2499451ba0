package studygen

import (
	"context"
	"errors"
	"testing"

	"active-recall-be/internal/entity"
	"active-recall-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	chatResponse string
	chatErr      error
	models       []string
	listErr      error
	model        string

	lastHistory []llm.Message
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	return f.chatResponse, f.chatErr
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.chatResponse, f.chatErr
}

func (f *fakeProvider) ListModels(ctx context.Context) ([]string, error) {
	return f.models, f.listErr
}

func (f *fakeProvider) ModelName() string {
	return f.model
}

type silentLogger struct{}

func (silentLogger) Debug(module, message string, details map[string]interface{}) {}
func (silentLogger) Info(module, message string, details map[string]interface{})  {}
func (silentLogger) Warn(module, message string, details map[string]interface{})  {}
func (silentLogger) Error(module, message string, details map[string]interface{}) {}
func (silentLogger) Sync() error                                                  { return nil }

func TestGenerateQuestions_ParsesFencedArray(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: "```json\n[{\"question_type\": \"mcq\", \"question_text\": \"Capital of France?\", \"options\": [\"A) Paris\", \"B) London\"], \"correct_answer\": \"A) Paris\", \"explanation\": \"Basic geography.\"}]\n```",
	}
	g := NewGateway(provider, silentLogger{})

	drafts, err := g.GenerateQuestions(context.Background(), "## Geography\nFrance...", 1, entity.QuestionTypeMCQ, "")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, entity.QuestionTypeMCQ, drafts[0].QuestionType)
	assert.Equal(t, "A) Paris", drafts[0].CorrectAnswer)
	assert.Len(t, drafts[0].Options, 2)

	// System prompt then user prompt carrying the notes.
	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Contains(t, provider.lastHistory[1].Content, "## Geography")
}

func TestGenerateQuestions_CustomInstructionsReachThePrompt(t *testing.T) {
	provider := &fakeProvider{chatResponse: "[]"}
	g := NewGateway(provider, silentLogger{})

	_, err := g.GenerateQuestions(context.Background(), "notes", 3, entity.QuestionTypeMixed, "Focus on definitions")
	require.NoError(t, err)
	assert.Contains(t, provider.lastHistory[1].Content, "Focus on definitions")
}

func TestGenerateQuestions_UnparsableResponseYieldsEmptySlice(t *testing.T) {
	provider := &fakeProvider{chatResponse: "Sorry, I can't produce JSON today."}
	g := NewGateway(provider, silentLogger{})

	drafts, err := g.GenerateQuestions(context.Background(), "notes", 5, entity.QuestionTypeMixed, "")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestGenerateQuestions_ProviderErrorPropagates(t *testing.T) {
	provider := &fakeProvider{chatErr: errors.New("connection refused")}
	g := NewGateway(provider, silentLogger{})

	_, err := g.GenerateQuestions(context.Background(), "notes", 5, entity.QuestionTypeMixed, "")
	assert.ErrorContains(t, err, "connection refused")
}

func TestAnalyzeRecall_ParsesAnalysis(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: `{"score": 72, "correct_points": ["cells"], "missed_points": [{"topic": "DNA", "explanation": "not mentioned"}], "inaccuracies": [], "suggestions": ["review DNA"], "summary": "Decent recall."}`,
	}
	g := NewGateway(provider, silentLogger{})

	analysis, err := g.AnalyzeRecall(context.Background(), "notes", "recall text")
	require.NoError(t, err)
	assert.Equal(t, 72, analysis.Score)
	require.Len(t, analysis.MissedPoints, 1)
	assert.Equal(t, "DNA", analysis.MissedPoints[0].Topic)
	assert.Equal(t, "Decent recall.", analysis.Summary)
}

func TestAnalyzeRecall_UnparsableResponseFallsBack(t *testing.T) {
	provider := &fakeProvider{chatResponse: "not json at all"}
	g := NewGateway(provider, silentLogger{})

	analysis, err := g.AnalyzeRecall(context.Background(), "notes", "recall text")
	require.NoError(t, err)
	assert.Equal(t, 0, analysis.Score)
	assert.Equal(t, FallbackAnalysis().Summary, analysis.Summary)
	assert.NotEmpty(t, analysis.Suggestions)
}

func TestCheckStatus_ModelAvailable(t *testing.T) {
	provider := &fakeProvider{
		model:  "qwen2.5:14b",
		models: []string{"llama3:8b", "qwen2.5:14b"},
	}
	g := NewGateway(provider, silentLogger{})

	status := g.CheckStatus(context.Background())
	assert.True(t, status.Running)
	assert.True(t, status.ModelAvailable)
	assert.Equal(t, "qwen2.5:14b", status.ModelName)
	assert.Len(t, status.AvailableModels, 2)
}

func TestCheckStatus_ModelMissing(t *testing.T) {
	provider := &fakeProvider{
		model:  "qwen2.5:14b",
		models: []string{"llama3:8b"},
	}
	g := NewGateway(provider, silentLogger{})

	status := g.CheckStatus(context.Background())
	assert.True(t, status.Running)
	assert.False(t, status.ModelAvailable)
}

func TestCheckStatus_BackendDown(t *testing.T) {
	provider := &fakeProvider{
		model:   "qwen2.5:14b",
		listErr: errors.New("dial tcp: connection refused"),
	}
	g := NewGateway(provider, silentLogger{})

	status := g.CheckStatus(context.Background())
	assert.False(t, status.Running)
	assert.False(t, status.ModelAvailable)
	assert.Contains(t, status.Error, "connection refused")
}
