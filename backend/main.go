package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/config"
	"projectassistant/backend/middleware"
	"projectassistant/backend/routes"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	policy := store.AssignmentDedupe
	if cfg.ExerciseAssignment == config.AssignmentAppend {
		policy = store.AssignmentAppend
	}
	st := store.New(db,
		store.WithCacheTTL(cfg.ExerciseCacheTTL),
		store.WithAssignmentPolicy(policy),
	)

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := st.Migrate(migrateCtx); err != nil {
		cancel()
		logger.Fatal("migration failed", zap.Error(err))
	}
	cancel()

	assistant := ai.New(ai.Config{
		APIKey:      cfg.AIAPIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIModel,
		Referer:     cfg.AIReferer,
		Title:       cfg.AITitle,
		Timeout:     cfg.AITimeout,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: &cfg.AITemperature,
	}, logger)
	if !cfg.AIEnabled() {
		logger.Warn("OPENROUTER_API_KEY not set, generative features will serve fallback content")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Smart Project Assistant",
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSAllowOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggingMiddleware(logger.Named("http")))

	// Setup routes
	routes.SetupRoutes(app, st, assistant, cfg, logger)

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.ServerPort), zap.Bool("ai_configured", assistant.Configured()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
