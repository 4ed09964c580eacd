package bootstrap

import (
	"log"

	"askaprilai-be/internal/config"
	"askaprilai-be/internal/controller"
	"askaprilai-be/internal/pkg/logger"
	"askaprilai-be/internal/pkg/mailer"
	"askaprilai-be/internal/repository/memory"
	"askaprilai-be/internal/repository/unitofwork"
	"askaprilai-be/internal/service"

	pktNats "askaprilai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssessmentController controller.IAssessmentController
	CopilotController    controller.ICopilotController

	// Background Services (Exposed for main.go to run)
	SynthesisConsumerService service.ISynthesisConsumerService
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional; the app degrades to no domain events when absent)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// In-memory conversation storage
	conversationRepo := memory.NewConversationRepository(cfg.Copilot.ConversationTTL)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Copilot.SynthesisTopic, pubSub)
	synthesisConsumerService := service.NewSynthesisConsumerService(
		pubSub,
		cfg.Copilot.SynthesisTopic,
		conversationRepo,
		cfg.Copilot.SynthesisDelay,
		natsPub,
		sysLogger,
	)

	assessmentService := service.NewAssessmentService(uowFactory, emailService, natsPub, sysLogger)
	copilotService := service.NewCopilotService(conversationRepo, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		AssessmentController: controller.NewAssessmentController(assessmentService),
		CopilotController:    controller.NewCopilotController(copilotService),

		SynthesisConsumerService: synthesisConsumerService,
	}
}
