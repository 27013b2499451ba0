package bootstrap

import (
	"log"

	"active-recall-be/internal/config"
	"active-recall-be/internal/controller"
	"active-recall-be/internal/pkg/logger"
	"active-recall-be/internal/repository/unitofwork"
	"active-recall-be/internal/service"
	"active-recall-be/pkg/llm/factory"
	"active-recall-be/pkg/studygen"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SectionController controller.ISectionController
	QuizController    controller.IQuizController
	RecallController  controller.IRecallController
	HealthController  controller.IHealthController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider + Gateway
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}
	gateway := studygen.NewGateway(llmProvider, sysLogger)

	// 3. Services
	aggregator := service.NewContentAggregator(uowFactory)
	sectionService := service.NewSectionService(uowFactory)
	quizService := service.NewQuizService(uowFactory, aggregator, gateway, sysLogger)
	recallService := service.NewRecallService(uowFactory, aggregator, gateway, sysLogger)
	healthService := service.NewHealthService(gateway)

	// 4. Controllers
	return &Container{
		SectionController: controller.NewSectionController(sectionService),
		QuizController:    controller.NewQuizController(quizService),
		RecallController:  controller.NewRecallController(recallService),
		HealthController:  controller.NewHealthController(healthService),
		Logger:            sysLogger,
	}
}
