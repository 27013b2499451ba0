package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"active-recall-be/internal/pkg/logger"
	"active-recall-be/pkg/llm/ollama"
	"active-recall-be/pkg/studygen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a live Ollama server. Set OLLAMA_INTEGRATION=1 and make
// sure the configured model is pulled before running.
func ollamaProviderForTest(t *testing.T) *ollama.OllamaProvider {
	t.Helper()

	if os.Getenv("OLLAMA_INTEGRATION") == "" {
		t.Skip("Skipping integration test: OLLAMA_INTEGRATION not set")
	}

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "qwen2.5:14b"
	}
	return ollama.NewOllamaProvider(baseURL, model)
}

type stdLogger struct{}

func (stdLogger) Debug(module, message string, details map[string]interface{}) {}
func (stdLogger) Info(module, message string, details map[string]interface{})  {}
func (stdLogger) Warn(module, message string, details map[string]interface{})  {}
func (stdLogger) Error(module, message string, details map[string]interface{}) {}
func (stdLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = stdLogger{}

func TestOllamaListModels(t *testing.T) {
	provider := ollamaProviderForTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	models, err := provider.ListModels(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, models)
	t.Logf("Served models: %v", models)
}

func TestOllamaQuestionGeneration(t *testing.T) {
	provider := ollamaProviderForTest(t)
	gateway := studygen.NewGateway(provider, stdLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	notes := "## Photosynthesis\nPlants convert sunlight, water and carbon dioxide into glucose and oxygen. The process happens in the chloroplasts."

	drafts, err := gateway.GenerateQuestions(ctx, notes, 2, "mcq", "")
	require.NoError(t, err)
	t.Logf("Generated %d questions", len(drafts))

	for _, d := range drafts {
		assert.NotEmpty(t, d.QuestionText)
		assert.NotEmpty(t, d.CorrectAnswer)
	}
}

func TestOllamaRecallAnalysis(t *testing.T) {
	provider := ollamaProviderForTest(t)
	gateway := studygen.NewGateway(provider, stdLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	notes := "## Photosynthesis\nPlants convert sunlight, water and carbon dioxide into glucose and oxygen."
	recall := "Plants turn sunlight into sugar using water."

	analysis, err := gateway.AnalyzeRecall(ctx, notes, recall)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, analysis.Score, 0)
	assert.LessOrEqual(t, analysis.Score, 100)
	t.Logf("Score: %d, summary: %s", analysis.Score, analysis.Summary)
}
