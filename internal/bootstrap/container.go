package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-course-assistant-be/internal/config"
	"ai-course-assistant-be/internal/controller"
	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/internal/repository/contract"
	"ai-course-assistant-be/internal/repository/implementation"
	"ai-course-assistant-be/internal/service"
	"ai-course-assistant-be/pkg/embedding"
	"ai-course-assistant-be/pkg/extract"
	"ai-course-assistant-be/pkg/llm"
	"ai-course-assistant-be/pkg/llm/factory"
	pktNats "ai-course-assistant-be/pkg/nats"
	"ai-course-assistant-be/pkg/rag/catalog"
	"ai-course-assistant-be/pkg/rag/prompt"
	"ai-course-assistant-be/pkg/rag/translator"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// Container wires every dependency once at startup. Nothing here is a
// singleton; components receive what they need through constructors.
type Container struct {
	Logger logger.ILogger

	ChatHistoryRepository contract.ChatHistoryRepository
	ChunkRepository       contract.ChunkRepository
	IngestionLogRepo      contract.IngestionLogRepository

	LlmHandle   *llm.Handle
	LlmFactory  *factory.Factory
	NatsPub     *pktNats.Publisher
	EventPubSub *gochannel.GoChannel

	ChatService      service.IChatService
	IngestionService service.IIngestionService
	ConsumerService  service.IConsumerService

	ChatController controller.IChatController
	FileController controller.IFileController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := logger.NewIsolatedLogger(cfg.App.LlmLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	chunkRepo := implementation.NewChunkRepository(db, cfg.Embedding.Size)
	historyRepo := implementation.NewChatHistoryRepository(db)
	ingestionLogRepo := implementation.NewIngestionLogRepository(db)

	ctx := context.Background()
	if err := chunkRepo.Init(ctx); err != nil {
		log.Fatalf("[FATAL] Failed to init chunk store: %v", err)
	}
	if err := historyRepo.Init(ctx); err != nil {
		log.Fatalf("[FATAL] Failed to init chat history store: %v", err)
	}
	if err := ingestionLogRepo.Init(ctx); err != nil {
		log.Fatalf("[FATAL] Failed to init ingestion log store: %v", err)
	}

	// 4. Embedding Provider based on Config
	var embeddingProvider embedding.Provider
	if cfg.Embedding.Provider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Embedding.OllamaBaseURL, cfg.Embedding.Model)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Embedding.Model)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.Embedding, cfg.Embedding.Model)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Embedding.Model)
	}

	// 5. LLM Provider Factory + initial provider
	providerFactory := factory.NewFactory(factory.Defaults{
		ApiKey:           cfg.Keys.Llm,
		ModelId:          cfg.Llm.ModelId,
		MaxTokens:        cfg.Llm.MaxTokens,
		Temperature:      cfg.Llm.Temperature,
		BaseURL:          cfg.Llm.BaseURL,
		GroqApiKey:       cfg.Keys.Groq,
		OpenRouterApiKey: cfg.Keys.OpenRouter,
		GoogleApiKey:     cfg.Keys.GoogleGemini,
		AzureApiKey:      cfg.Keys.AzureOpenAI,
		AzureEndpoint:    cfg.Keys.AzureEndpoint,
		AzureApiVersion:  cfg.Keys.AzureOpenAIVersion,
	})
	active, err := providerFactory.CreateActive(cfg.Llm.Provider, factory.Overrides{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", active.ProviderId, active.ModelId)
	handle := llm.NewHandle(active)

	// 6. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 7. RAG collaborators
	courseCatalog := catalog.NewCatalog(cfg.App.DataDir, 5*time.Minute, sysLogger)
	promptBuilder := prompt.NewBuilder()
	queryTranslator := translator.NewTranslator(ragLogger)
	extractor := extract.NewExtractor(sysLogger)

	// 8. Services
	publisherService := service.NewPublisherService(cfg.App.IngestionTopic, pubSub)
	chatService := service.NewChatService(
		cfg,
		historyRepo,
		chunkRepo,
		embeddingProvider,
		handle,
		providerFactory,
		queryTranslator,
		promptBuilder,
		courseCatalog,
		natsPub,
		ragLogger,
	)
	ingestionService := service.NewIngestionService(
		cfg,
		extractor,
		embeddingProvider,
		chunkRepo,
		publisherService,
		sysLogger,
	)
	consumerService := service.NewAuditConsumerService(pubSub, cfg.App.IngestionTopic, ingestionLogRepo, sysLogger)

	// 9. Controllers
	chatController := controller.NewChatController(chatService)
	fileController := controller.NewFileController(ingestionService)

	return &Container{
		Logger:                sysLogger,
		ChatHistoryRepository: historyRepo,
		ChunkRepository:       chunkRepo,
		IngestionLogRepo:      ingestionLogRepo,
		LlmHandle:             handle,
		LlmFactory:            providerFactory,
		NatsPub:               natsPub,
		EventPubSub:           pubSub,
		ChatService:           chatService,
		IngestionService:      ingestionService,
		ConsumerService:       consumerService,
		ChatController:        chatController,
		FileController:        fileController,
	}
}
