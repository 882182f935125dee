package bootstrap

import (
	"log"
	"time"

	"ai-mockinterview-be/internal/config"
	"ai-mockinterview-be/internal/constant"
	"ai-mockinterview-be/internal/controller"
	"ai-mockinterview-be/internal/pkg/logger"
	"ai-mockinterview-be/internal/pkg/mailer"
	"ai-mockinterview-be/internal/pkg/serverutils"
	"ai-mockinterview-be/internal/repository/unitofwork"
	"ai-mockinterview-be/internal/service"
	"ai-mockinterview-be/pkg/embedding"
	"ai-mockinterview-be/pkg/filestore"
	"ai-mockinterview-be/pkg/llm/openai"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DocumentController  controller.IDocumentController
	InterviewController controller.IInterviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	fileStore, err := filestore.NewLocalStore(cfg.App.UploadsDir, cfg.App.BaseURL+"/uploads")
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize file store: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	// Remote embeddings degrade to the deterministic fallback; the cache
	// shields repeated query texts from refetching.
	var embeddingProvider embedding.Provider = embedding.NewOpenAIProvider(
		cfg.Ai.BaseURL,
		cfg.Keys.OpenAI,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.RequestTimeout,
	)
	embeddingProvider = embedding.NewResilientProvider(embeddingProvider, cfg.Ai.FallbackDimension)
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider, time.Hour)
	log.Printf("[INFO] Using Embedding Provider: OPENAI (%s), fallback dimension %d", cfg.Ai.EmbeddingModel, cfg.Ai.FallbackDimension)

	llmProvider := openai.NewOpenAIProvider(
		cfg.Keys.OpenAI,
		cfg.Ai.BaseURL,
		cfg.Ai.GenerationModel,
		cfg.Ai.RequestTimeout,
	)
	log.Printf("[INFO] Using LLM Provider: OPENAI (%s)", cfg.Ai.GenerationModel)

	// 4. Services
	publisherService := service.NewPublisherService(constant.InterviewCompletedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.InterviewCompletedTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory, cfg.Keys.JwtSecret)
	documentService := service.NewDocumentService(uowFactory, embeddingProvider, fileStore, sysLogger)
	interviewService := service.NewInterviewService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		publisherService,
		sysLogger,
	)

	// 5. Controllers
	jwtMiddleware := serverutils.JwtMiddleware(cfg.Keys.JwtSecret)

	return &Container{
		AuthController:      controller.NewAuthController(authService, jwtMiddleware),
		DocumentController:  controller.NewDocumentController(documentService, jwtMiddleware),
		InterviewController: controller.NewInterviewController(interviewService, jwtMiddleware),

		ConsumerService: consumerService,
	}
}
