package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lottery-data-backend/internal/common/config"
	"lottery-data-backend/internal/common/logger"
	"lottery-data-backend/internal/common/middleware"
	lotteryhttp "lottery-data-backend/internal/features/lottery/delivery/http"
	"lottery-data-backend/internal/features/lottery/repository/file"
	"lottery-data-backend/internal/features/lottery/service"
)

// @title           Lottery Data API
// @version         1.0
// @description     Persistence and integrity backend for the lottery drawing app: save, load, backup, restore and validate the game state.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name lottery
// @tag.description Lottery state persistence - save, load, backup, restore, validate

func main() {
	cfg := config.Load()

	logger.Init("lottery-data-backend", cfg.Debug)

	repo, err := file.New(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	logger.Info().Str("data_path", repo.DataPath()).Msg("Storage initialized")

	lotterySvc := service.NewLotteryService(repo)
	handler := lotteryhttp.NewLotteryHandler(lotterySvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server stopped")
}
