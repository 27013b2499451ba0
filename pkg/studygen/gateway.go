package studygen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"active-recall-be/internal/constant"
	"active-recall-be/internal/entity"
	"active-recall-be/internal/pkg/logger"
	"active-recall-be/pkg/llm"
)

// QuestionDraft is one question as returned by the model, before it is
// persisted and owned by a section.
type QuestionDraft struct {
	QuestionType  string   `json:"question_type"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Status reports the result of the backend connectivity probe.
type Status struct {
	Running         bool
	ModelAvailable  bool
	ModelName       string
	AvailableModels []string
	Error           string
}

// Gateway translates study-domain requests into LLM calls and extracts
// structured JSON from the free-text responses.
type IGateway interface {
	GenerateQuestions(ctx context.Context, notesContent string, numQuestions int, questionType, customInstructions string) ([]QuestionDraft, error)
	AnalyzeRecall(ctx context.Context, originalNotes, userRecall string) (*entity.Analysis, error)
	CheckStatus(ctx context.Context) Status
}

type Gateway struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewGateway(provider llm.LLMProvider, sysLogger logger.ILogger) IGateway {
	return &Gateway{
		provider: provider,
		logger:   sysLogger,
	}
}

// GenerateQuestions asks the model for numQuestions questions over the given
// notes. A response that cannot be parsed as a JSON array yields an empty
// slice and no error; the caller decides whether that is a failure.
func (g *Gateway) GenerateQuestions(ctx context.Context, notesContent string, numQuestions int, questionType, customInstructions string) ([]QuestionDraft, error) {
	typeInstruction := constant.QuizTypeInstructionMixed
	switch questionType {
	case entity.QuestionTypeMCQ:
		typeInstruction = constant.QuizTypeInstructionMCQ
	case entity.QuestionTypeFreeResponse:
		typeInstruction = constant.QuizTypeInstructionFreeResponse
	}

	customSection := ""
	if strings.TrimSpace(customInstructions) != "" {
		customSection = fmt.Sprintf("\n\nADDITIONAL INSTRUCTIONS FROM USER:\n%s\n", strings.TrimSpace(customInstructions))
	}

	prompt := fmt.Sprintf(constant.QuizGenerationPromptTemplate,
		numQuestions, typeInstruction, customSection, notesContent)

	response, err := g.provider.Chat(ctx, []llm.Message{
		{Role: constant.LLMRoleSystem, Content: constant.QuizGenerationSystemPrompt},
		{Role: constant.LLMRoleUser, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var drafts []QuestionDraft
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &drafts); err != nil {
		g.logger.Error("studygen", "Failed to parse question generation response", map[string]interface{}{
			"error":    err.Error(),
			"response": response,
		})
		return []QuestionDraft{}, nil
	}

	return drafts, nil
}

// AnalyzeRecall grades a recall attempt against the original notes. On an
// unparsable response it returns the fixed fallback analysis so the caller
// always persists a well-formed session.
func (g *Gateway) AnalyzeRecall(ctx context.Context, originalNotes, userRecall string) (*entity.Analysis, error) {
	prompt := fmt.Sprintf(constant.RecallAnalysisPromptTemplate, originalNotes, userRecall)

	response, err := g.provider.Chat(ctx, []llm.Message{
		{Role: constant.LLMRoleSystem, Content: constant.RecallAnalysisSystemPrompt},
		{Role: constant.LLMRoleUser, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("recall analysis: %w", err)
	}

	var analysis entity.Analysis
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &analysis); err != nil {
		g.logger.Error("studygen", "Failed to parse recall analysis response", map[string]interface{}{
			"error":    err.Error(),
			"response": response,
		})
		return FallbackAnalysis(), nil
	}

	return &analysis, nil
}

// CheckStatus probes the backend's model list. Failures are reported in the
// Status value, never as an error.
func (g *Gateway) CheckStatus(ctx context.Context) Status {
	modelName := g.provider.ModelName()

	models, err := g.provider.ListModels(ctx)
	if err != nil {
		return Status{
			Running:   false,
			ModelName: modelName,
			Error:     err.Error(),
		}
	}

	modelAvailable := false
	for _, name := range models {
		if strings.Contains(name, modelName) {
			modelAvailable = true
			break
		}
	}

	return Status{
		Running:         true,
		ModelAvailable:  modelAvailable,
		ModelName:       modelName,
		AvailableModels: models,
	}
}

// FallbackAnalysis is the degraded result persisted when the model's analysis
// output cannot be parsed.
func FallbackAnalysis() *entity.Analysis {
	return &entity.Analysis{
		Score:         0,
		CorrectPoints: []string{},
		MissedPoints:  []entity.MissedPoint{},
		Inaccuracies:  []entity.Inaccuracy{},
		Suggestions:   []string{constant.RecallFallbackSuggestion},
		Summary:       constant.RecallFallbackSummary,
	}
}
