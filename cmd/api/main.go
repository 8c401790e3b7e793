package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wardrobe-ai/config"
	_ "wardrobe-ai/docs" // Swagger docs
	"wardrobe-ai/internal/httpserver"
	suggestUC "wardrobe-ai/internal/suggest/usecase"
	"wardrobe-ai/internal/wardrobe/repository/sqlitekv"
	"wardrobe-ai/pkg/log"
	"wardrobe-ai/pkg/vision"
	"wardrobe-ai/pkg/weather"
)

// @title       Wardrobe AI API
// @description Personal wardrobe management: AI-assisted item capture, wear analytics, and weather-aware outfit recommendations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Wardrobe AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Wardrobe repository
	repo, err := sqlitekv.New(cfg.Storage.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		return
	}
	defer repo.Close()

	// 4. Vision client (optional)
	var visionClient vision.IVision
	if cfg.Vision.APIKey != "" {
		visionClient, err = vision.New(vision.Config{
			APIKey:     cfg.Vision.APIKey,
			Model:      cfg.Vision.Model,
			APIURL:     cfg.Vision.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Vision.Timeout},
		})
		if err != nil {
			logger.Warnf(ctx, "Vision not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Vision client initialized")
		}
	} else {
		logger.Warn(ctx, "VISION_API_KEY missing, image analysis disabled")
	}

	// 5. Weather client
	weatherClient := weather.NewClient(weather.Config{
		BaseURL:   cfg.Weather.BaseURL,
		UserAgent: cfg.Weather.UserAgent,
		CacheTTL:  cfg.Weather.CacheTTL,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		JWTSecret:    cfg.Auth.JWTSecret,
		WardrobeRepo: repo,
		Vision:       visionClient,
		Weather:      weatherClient,
		SuggestCfg: suggestUC.Config{
			Strategy:       cfg.Suggest.Strategy,
			MaxSuggestions: cfg.Suggest.MaxSuggestions,
			SessionTTL:     cfg.Suggest.SessionTTL,
			DefaultCity:    cfg.Weather.DefaultCity,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
