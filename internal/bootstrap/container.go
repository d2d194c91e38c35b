package bootstrap

import (
	"talent-search-be/internal/config"
	"talent-search-be/internal/controller"
	"talent-search-be/internal/pkg/logger"
	"talent-search-be/internal/repository/implementation"
	"talent-search-be/internal/repository/unitofwork"
	"talent-search-be/internal/service"
	"talent-search-be/pkg/embedding"
	"talent-search-be/pkg/embedding/openai"
	"talent-search-be/pkg/search"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Embedding Provider based on Config
	var embeddingProvider embedding.Provider
	if cfg.Embed.Provider == "openai" {
		provider := openai.NewOpenAIProvider(cfg.Embed.APIKey, cfg.Embed.Model)
		if cfg.Embed.BaseURL != "" {
			provider = provider.WithBaseURL(cfg.Embed.BaseURL)
		}
		embeddingProvider = provider
	} else {
		embeddingProvider = embedding.NewNoopProvider()
	}
	sysLogger.Info("bootstrap", "Embedding provider selected", map[string]interface{}{
		"provider": embeddingProvider.Name(),
	})

	// 3. Search Engine
	indexRepo := implementation.NewCandidateIndexRepository(db)
	recordRepo := implementation.NewDataRecordRepository(db)
	retriever := search.NewRetriever(embeddingProvider, indexRepo, recordRepo)

	// 4. Services
	searchService := service.NewSearchService(uowFactory, retriever, sysLogger)

	// 5. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		Logger:           sysLogger,
	}
}
