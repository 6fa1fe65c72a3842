package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"ai-policyintel-be/internal/config"
	"ai-policyintel-be/internal/controller"
	"ai-policyintel-be/internal/pkg/apperror"
	"ai-policyintel-be/internal/pkg/logger"
	"ai-policyintel-be/internal/repository/memory"
	"ai-policyintel-be/internal/service"
	"ai-policyintel-be/internal/vectorstore"
	storemem "ai-policyintel-be/internal/vectorstore/memory"
	"ai-policyintel-be/internal/vectorstore/pgvector"
	"ai-policyintel-be/internal/vectorstore/qdrant"
	"ai-policyintel-be/pkg/embedding"
	embhf "ai-policyintel-be/pkg/embedding/huggingface"
	"ai-policyintel-be/pkg/extractor"
	"ai-policyintel-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	DocumentController  controller.IDocumentController
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	if err := checkCredentials(cfg); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embhf.NewHuggingFaceProvider(
			cfg.Ai.HuggingFaceToken,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: HUGGINGFACE (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		llmProviderKey(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Store
	var store vectorstore.VectorStore
	switch cfg.Vector.Backend {
	case "pgvector":
		if db == nil {
			log.Fatalf("[FATAL] pgvector backend selected but no database connection configured")
		}
		store = pgvector.NewPgVectorStore(db, cfg.Vector.Dimensions, cfg.Vector.QueryTimeoutSec)
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	case "memory":
		store = storemem.NewMemoryStore(cfg.Vector.Dimensions)
		log.Printf("[INFO] Using Vector Store: MEMORY (non-persistent)")
	default:
		store = qdrant.NewQdrantStore(
			cfg.Vector.QdrantURL,
			cfg.Vector.QdrantKey,
			cfg.Vector.Collection,
			cfg.Vector.Dimensions,
		)
		log.Printf("[INFO] Using Vector Store: QDRANT (%s)", cfg.Vector.Collection)
	}

	// 5. Repositories and Registries
	documentRepo := memory.NewDocumentRepository()
	extractorRegistry := extractor.NewRegistry(cfg.Ingest.AllowedExtensions)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Ingest.SummaryTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingest.SummaryTopicName,
		documentRepo,
		llmProvider,
		cfg.Ai.CallTimeoutSec,
	)

	ingestionService := service.NewIngestionService(
		cfg.Ingest,
		extractorRegistry,
		embeddingProvider,
		store,
		documentRepo,
		publisherService,
		sysLogger,
	)
	assistantService := service.NewAssistantService(
		cfg.Ai,
		cfg.Query,
		embeddingProvider,
		llmProvider,
		store,
	)

	// 7. Controllers
	return &Container{
		DocumentController:  controller.NewDocumentController(ingestionService),
		AssistantController: controller.NewAssistantController(assistantService),

		ConsumerService: consumerService,
	}
}

func llmProviderKey(cfg *config.Config) string {
	switch cfg.Ai.LLMProvider {
	case "huggingface":
		return cfg.Ai.HuggingFaceToken
	default:
		return cfg.Ai.GeminiKey
	}
}

// checkCredentials fails fast on missing API keys for the selected
// providers. Without this the first request would surface the gap as a
// dependency failure instead of a configuration one.
func checkCredentials(cfg *config.Config) error {
	if cfg.Ai.EmbeddingProvider != "ollama" && cfg.Ai.HuggingFaceToken == "" {
		return apperror.Configuration("HF_TOKEN is required for the huggingface embedding provider", nil)
	}

	switch cfg.Ai.LLMProvider {
	case "gemini":
		if cfg.Ai.GeminiKey == "" {
			return apperror.Configuration("GOOGLE_API_KEY is required for the gemini LLM provider", nil)
		}
	case "huggingface":
		if cfg.Ai.HuggingFaceToken == "" {
			return apperror.Configuration("HF_TOKEN is required for the huggingface LLM provider", nil)
		}
	}
	return nil
}
