package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"formation-management/config"
	_ "formation-management/docs" // Swagger docs
	assistantHTTP "formation-management/internal/assistant/delivery/http"
	"formation-management/internal/assistant/store"
	assistantUC "formation-management/internal/assistant/usecase"
	"formation-management/internal/httpserver"
	"formation-management/internal/middleware"
	notificationHTTP "formation-management/internal/notification/delivery/http"
	notificationUC "formation-management/internal/notification/usecase"
	"formation-management/pkg/deepseek"
	"formation-management/pkg/gmailer"
	"formation-management/pkg/log"
)

// @title       Formation Management API
// @description Training-management platform: assistant chat and notification mails.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Formation Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Mailer — the mail identity is mandatory: refuse to serve without it.
	mailer, err := gmailer.New(ctx, cfg.Gmail, logger)
	if err != nil {
		logger.Errorf(ctx, "Mail configuration is invalid: %v", err)
		os.Exit(1)
	}
	notifUC := notificationUC.New(logger, mailer)
	notifHandler := notificationHTTP.New(logger, notifUC)

	// 4. Assistant
	llm := deepseek.New(deepseek.Config{
		APIKey:  cfg.DeepSeek.APIKey,
		Model:   cfg.DeepSeek.Model,
		BaseURL: cfg.DeepSeek.BaseURL,
	})
	if cfg.DeepSeek.APIKey == "" {
		logger.Warn(ctx, "DEEPSEEK_API_KEY is missing: chat requests will fail until it is set")
	}

	convStore, err := store.New(cfg.Chat.MaxUsers)
	if err != nil {
		logger.Errorf(ctx, "Failed to create conversation store: %v", err)
		os.Exit(1)
	}
	chatUC := assistantUC.New(logger, llm, convStore, assistantUC.Config{})
	chatHandler := assistantHTTP.New(logger, chatUC)

	// 5. HTTP Server
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Chat.RateLimitPerMin})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          mw,
		AssistantHandler:    chatHandler,
		NotificationHandler: notifHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
