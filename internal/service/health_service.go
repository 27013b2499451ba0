package service

import (
	"context"
	"time"

	"active-recall-be/internal/dto"
	"active-recall-be/pkg/studygen"

	gocache "github.com/patrickmn/go-cache"
)

const (
	statusCacheKey = "ollama_status"
	statusCacheTTL = 30 * time.Second
)

type IHealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	gateway studygen.IGateway
	cache   *gocache.Cache
}

func NewHealthService(gateway studygen.IGateway) IHealthService {
	return &healthService{
		gateway: gateway,
		// The UI polls health; cache the probe so polling never hammers
		// the model server.
		cache: gocache.New(statusCacheTTL, time.Minute),
	}
}

func (c *healthService) Check(ctx context.Context) *dto.HealthResponse {
	var status studygen.Status
	if cached, found := c.cache.Get(statusCacheKey); found {
		status = cached.(studygen.Status)
	} else {
		status = c.gateway.CheckStatus(ctx)
		c.cache.SetDefault(statusCacheKey, status)
	}

	return &dto.HealthResponse{
		Status: "healthy",
		Ollama: dto.OllamaStatusResponse{
			Running:         status.Running,
			ModelAvailable:  status.ModelAvailable,
			ModelName:       status.ModelName,
			AvailableModels: status.AvailableModels,
			Error:           status.Error,
		},
	}
}
