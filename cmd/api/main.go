// Equinox API
//
// REST API for a personal wellness assistant.
//
//	@title			Equinox API
//	@version		1.0
//	@description	Daily health logging with readiness analytics, notes, todos, chat agents, and Google-powered morning briefings.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User and wellness profile endpoints
//
//	@tag.name			health-logs
//	@tag.description	Daily health check-in endpoints
//
//	@tag.name			wellness
//	@tag.description	Readiness, sleep debt, trends, and streak analytics
//
//	@tag.name			notes
//	@tag.description	Note management endpoints
//
//	@tag.name			todos
//	@tag.description	Todo management endpoints
//
//	@tag.name			chat
//	@tag.description	Agent chat and morning briefing endpoints
//
//	@tag.name			google
//	@tag.description	Google account linking endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mainakmishra/equinox/internal/agent"
	"github.com/mainakmishra/equinox/internal/api"
	"github.com/mainakmishra/equinox/internal/api/handler"
	"github.com/mainakmishra/equinox/internal/config"
	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/google"
	"github.com/mainakmishra/equinox/internal/langfuse"
	"github.com/mainakmishra/equinox/internal/llm"
	"github.com/mainakmishra/equinox/internal/repository"
	"github.com/mainakmishra/equinox/internal/seed"
	"github.com/mainakmishra/equinox/internal/service"
	"github.com/mainakmishra/equinox/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op unless Langfuse is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "equinox-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.HealthLog{},
		&domain.Note{},
		&domain.Todo{},
		&domain.GoogleToken{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	healthLogRepo := repository.NewHealthLogRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, profileRepo)
	healthService := service.NewHealthService(healthLogRepo, userRepo, profileRepo)
	noteService := service.NewNoteService(noteRepo, userRepo)
	todoService := service.NewTodoService(todoRepo, userRepo)

	// Initialize Google integration (may be nil if not configured)
	googleService, err := google.NewService(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, tokenRepo)
	if err != nil {
		log.Fatalf("Failed to initialize Google integration: %v", err)
	}
	if googleService == nil {
		log.Println("Warning: Google OAuth not configured, Gmail and Tasks features will be unavailable")
	}

	// Initialize LLM client (may be nil if not configured)
	llmClient := llm.NewClient(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL)
	if llmClient == nil {
		log.Println("Warning: LLM API key not configured, chat and briefing summaries will be unavailable")
	}

	briefingService := service.NewBriefingService(healthLogRepo, userRepo, googleService, llmClient)

	// Agent personas come from Langfuse when configured, with built-in fallbacks
	wellnessPrompt := agent.SystemPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: "wellness-agent",
	}, agent.WellnessPrompt())
	productivityPrompt := agent.SystemPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: "productivity-agent",
	}, agent.ProductivityPrompt())

	wellnessAgent := agent.New(domain.AgentWellness, llmClient, wellnessPrompt, agent.WellnessTools(healthService))
	productivityAgent := agent.New(domain.AgentProductivity, llmClient, productivityPrompt,
		agent.ProductivityTools(noteService, todoService, googleService))
	supervisor := agent.NewSupervisor(llmClient, wellnessAgent, productivityAgent)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	healthLogHandler := handler.NewHealthLogHandler(healthService)
	noteHandler := handler.NewNoteHandler(noteService)
	todoHandler := handler.NewTodoHandler(todoService)
	chatHandler := handler.NewChatHandler(supervisor, briefingService)
	authHandler := handler.NewAuthHandler(googleService)

	// Schedule morning briefings for Google-linked users
	scheduler := cron.New()
	if cfg.BriefingCronSpec != "" {
		if _, err := scheduler.AddFunc(cfg.BriefingCronSpec, func() {
			briefingService.RunScheduled(context.Background())
		}); err != nil {
			log.Fatalf("Invalid briefing cron spec %q: %v", cfg.BriefingCronSpec, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Morning briefings scheduled (%s)", cfg.BriefingCronSpec)
	}

	// Setup router
	router := api.NewRouter(userHandler, healthLogHandler, noteHandler, todoHandler, chatHandler, authHandler)
	routerHandler := router.Setup()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routerHandler,
	}

	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
