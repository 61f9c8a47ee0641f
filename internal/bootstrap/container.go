package bootstrap

import (
	"log"

	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/controller"
	"chambers-practice-be/internal/pkg/logger"
	"chambers-practice-be/internal/pkg/mailer"
	"chambers-practice-be/internal/repository/unitofwork"
	"chambers-practice-be/internal/service"
	"chambers-practice-be/pkg/llm/factory"
	speechopenai "chambers-practice-be/pkg/speech/openai"

	"gorm.io/gorm"
)

type Container struct {
	AuthController           controller.IAuthController
	HealthController         controller.IHealthController
	AttendanceNoteController controller.IAttendanceNoteController
	DirectoryController      controller.IDirectoryController
	ReportController         controller.IReportController
	AiController             controller.IAiController
	TodoController           controller.ITodoController
	TranscriptController     controller.ITranscriptController
	CaseController           controller.ICaseController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
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

	// 2. AI providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	speechProvider := speechopenai.NewWhisperProvider(cfg.Ai.OpenAIKey, cfg.Ai.SpeechModel)

	// 3. Services
	ownerId := cfg.Owner.Id
	directoryService := service.NewDirectoryService(uowFactory, ownerId, service.DefaultDirectorySeeds(), sysLogger)
	attendanceService := service.NewAttendanceNoteService(uowFactory, ownerId, directoryService, sysLogger)
	reportService := service.NewReportService(uowFactory, ownerId, cfg.Chambers, emailService)
	todoService := service.NewTodoService(uowFactory, ownerId)
	transcriptService := service.NewTranscriptService(uowFactory, ownerId)
	caseService := service.NewCaseService(uowFactory, ownerId)
	transcriptionService := service.NewTranscriptionService(uowFactory, ownerId, speechProvider, llmProvider, sysLogger)
	authService := service.NewAuthService(cfg.Auth)

	// 4. Controllers
	return &Container{
		AuthController:           controller.NewAuthController(authService),
		HealthController:         controller.NewHealthController(),
		AttendanceNoteController: controller.NewAttendanceNoteController(attendanceService),
		DirectoryController:      controller.NewDirectoryController(directoryService),
		ReportController:         controller.NewReportController(reportService),
		AiController:             controller.NewAiController(transcriptionService),
		TodoController:           controller.NewTodoController(todoService),
		TranscriptController:     controller.NewTranscriptController(transcriptService),
		CaseController:           controller.NewCaseController(caseService),
		Logger:                   sysLogger,
	}
}
