package dto

type OllamaStatusResponse struct {
	Running         bool     `json:"running"`
	ModelAvailable  bool     `json:"model_available"`
	ModelName       string   `json:"model_name"`
	AvailableModels []string `json:"available_models,omitempty"`
	Error           string   `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string               `json:"status"`
	Ollama OllamaStatusResponse `json:"ollama"`
}
