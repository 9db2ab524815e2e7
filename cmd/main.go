package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhkim-dev/teaching-agent-backend/internal/data/db"
	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos"
	httpserver "github.com/jhkim-dev/teaching-agent-backend/internal/http"
	"github.com/jhkim-dev/teaching-agent-backend/internal/http/handlers"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/curriculum"
	"github.com/jhkim-dev/teaching-agent-backend/internal/modules/materials"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/logger"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/openai"
	"github.com/jhkim-dev/teaching-agent-backend/internal/platform/redisx"
	"github.com/jhkim-dev/teaching-agent-backend/internal/scraper"
	"github.com/jhkim-dev/teaching-agent-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	addr := utils.GetEnv("HTTP_ADDR", ":8000", log)
	baseURL := utils.GetEnv("CURRICULUM_BASE_URL", scraper.DefaultBaseURL, log)

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	materialRepo := repos.NewGeneratedMaterialRepo(theDB, log)
	chatRepo := repos.NewChatExchangeRepo(theDB, log)

	// Optional redis content cache
	contentCache, err := redisx.NewCache(log)
	if err != nil {
		log.Warn("Redis cache unavailable, content caching disabled", "error", err)
		contentCache = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	store := curriculum.NewStore(theDB, log)
	extractor := scraper.NewExtractor(baseURL, nil, log)
	fetcher := scraper.NewFetcher(nil, log)
	curriculumService := curriculum.NewService(store, extractor, scraper.NewStaticFallback(), fetcher, contentCache, log)

	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}
	materialsService := materials.NewService(openaiClient, materialRepo, chatRepo, log)

	// Warm up the current year's mapping; failure is not fatal, lookups
	// will retry on demand.
	warmCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if ready, err := curriculumService.EnsureYear(warmCtx, time.Now().Year()); err != nil {
		log.Warn("Year warm-up failed", "error", err)
	} else if !ready {
		log.Warn("Year warm-up found no data", "year", time.Now().Year())
	}
	cancel()

	// HTTP
	storage := "sqlite"
	if os.Getenv("POSTGRES_HOST") != "" {
		storage = "postgres"
	}
	server := httpserver.NewServer(httpserver.RouterConfig{
		HealthHandler:     handlers.NewHealthHandler(storage),
		CurriculumHandler: handlers.NewCurriculumHandler(curriculumService),
		MaterialHandler:   handlers.NewMaterialHandler(materialsService, curriculumService),
	})

	log.Info("Starting HTTP server", "addr", addr)
	if err := server.Run(addr); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}
