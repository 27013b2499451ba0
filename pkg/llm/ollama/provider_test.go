package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"active-recall-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SendsNonStreamingRequest(t *testing.T) {
	var captured ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   captured.Model,
			Message: ollamaMessage{Role: "assistant", Content: "[]"},
			Done:    true,
		})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	content, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are helpful."},
		{Role: "user", Content: "Generate questions."},
	})
	require.NoError(t, err)
	assert.Equal(t, "[]", content)

	assert.Equal(t, "qwen2.5:14b", captured.Model)
	assert.False(t, captured.Stream)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestChat_MapsModelRoleToAssistant(t *testing.T) {
	var captured ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "model", Content: "earlier reply"},
	})
	require.NoError(t, err)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "assistant", captured.Messages[0].Role)
}

func TestChat_OptionsOverrideModelAndTokens(t *testing.T) {
	var captured ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	_, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithModel("llama3:8b"),
		llm.WithTemperature(0.2),
	)
	require.NoError(t, err)
	assert.Equal(t, "llama3:8b", captured.Model)
	require.NotNil(t, captured.Options)
	assert.InDelta(t, 0.2, captured.Options.Temperature, 1e-9)
}

func TestChat_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "missing:model")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestListModels_ParsesTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"models": [{"name": "qwen2.5:14b"}, {"name": "llama3:8b"}]}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	models, err := provider.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"qwen2.5:14b", "llama3:8b"}, models)
}

func TestListModels_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // probe a dead server

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	_, err := provider.ListModels(context.Background())
	assert.Error(t, err)
}

func TestGenerate_WrapsPromptAsUserMessage(t *testing.T) {
	var captured ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "done"}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "qwen2.5:14b")

	content, err := provider.Generate(context.Background(), "one-shot prompt")
	require.NoError(t, err)
	assert.Equal(t, "done", content)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "one-shot prompt", captured.Messages[0].Content)
}
