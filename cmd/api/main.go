package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/interview-fever/internal/config"
	"alfredoptarigan/interview-fever/internal/handlers"
	"alfredoptarigan/interview-fever/internal/repositories"
	"alfredoptarigan/interview-fever/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	zl.Info("✅ Config loaded", zap.String("env", cfg.Server.Env), zap.String("provider", cfg.LLM.Provider))

	ctx := context.Background()
	metrics := services.NewMetrics()

	// Session registry
	sessionRepo := repositories.NewSessionRepository()
	metrics.TrackSessions(sessionRepo.Count)

	// Resume ingestion
	pdfParser := services.NewPDFParserService(zl.Named("pdf"))
	ingestion := services.NewIngestionService(
		pdfParser,
		cfg.Ingestion.MaxFileSize,
		cfg.Ingestion.MinResumeChars,
		metrics,
		zl.Named("ingestion"),
	)

	// Chat model
	chatModel, err := services.NewChatModel(ctx, services.ChatModelConfig{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
	}, zl.Named("llm"))
	if err != nil {
		zl.Fatal("❌ Failed to initialize chat model", zap.Error(err))
	}
	zl.Info("✅ Chat model initialized", zap.String("model", chatModel.Model()))

	interview := services.NewInterviewService(
		ingestion,
		chatModel,
		services.NewCompletionDetector(cfg.Interview.CompletionPhrases),
		cfg.LLM.ContextTokens,
		metrics,
		zl.Named("interview"),
	)

	janitor := services.NewSessionJanitor(
		sessionRepo,
		cfg.Session.IdleTTL,
		cfg.Session.SweepInterval,
		zl.Named("janitor"),
	)
	janitor.Start(ctx)

	// Initialize Handlers
	routes := handlers.Routes{
		Sessions: handlers.NewSessionHandler(sessionRepo),
		Upload: handlers.NewUploadHandler(
			sessionRepo,
			services.NewUploadService(cfg.Ingestion.MaxFileSize),
			interview,
		),
		Answers: handlers.NewAnswerHandler(sessionRepo, interview),
		Metrics: metrics.Handler(),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Fever API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Ingestion.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.Register(app, routes)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
