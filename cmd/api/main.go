// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/config"
	"github.com/knowall-ai/site-api/internal/handler"
	"github.com/knowall-ai/site-api/internal/llm"
	"github.com/knowall-ai/site-api/internal/middleware"
	"github.com/knowall-ai/site-api/internal/service"
	"github.com/knowall-ai/site-api/internal/store"
	"github.com/knowall-ai/site-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting API server")

	if cfg.UsingDefaultAdminKey() {
		log.Warn("using default admin API key, set ADMIN_API_KEY for better security")
	}

	// Initialize transcript store
	transcripts := store.NewFileStore(cfg.ChatLogFile, log)

	// Initialize LLM client; a nil client means chat requests fail with a
	// configuration error until a credential is provided.
	var llmClient llm.Client
	switch {
	case cfg.DefaultLLM == string(llm.ProviderAnthropic) && cfg.AnthropicAPIKey != "":
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	case cfg.OpenAIAPIKey != "":
		llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	case cfg.AnthropicAPIKey != "":
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		err = llm.ErrNotConfigured
	}
	if err != nil {
		log.Warn("no LLM provider configured, chat endpoint will return errors", zap.Error(err))
		llmClient = nil
	} else {
		log.Info("LLM provider configured", zap.String("provider", llmClient.Name()))
	}

	// Initialize services and handlers
	chatSvc := service.NewChatService(llmClient, transcripts, cfg.ChatModel, cfg.ProviderTimeout, log)

	healthHandler := handler.NewHealthHandler(transcripts)
	chatHandler := handler.NewChatHandler(chatSvc, log)
	transcriptHandler := handler.NewTranscriptHandler(transcripts, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public chat endpoint, rate limited per IP
		r.With(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)).
			Post("/chat", chatHandler.Chat)

		// Transcript retrieval, admin token required
		r.With(middleware.AdminAuth(cfg.AdminAPIKey)).
			Get("/logs", transcriptHandler.Get)
	})

	// Static marketing site, when the web root exists
	if info, err := os.Stat(cfg.WebDir); err == nil && info.IsDir() {
		log.Info("serving static site", zap.String("dir", cfg.WebDir))
		r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
