package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/config"
	"github.com/SupreetAmrad/e-commerce-backend/internal/clients"
	"github.com/SupreetAmrad/e-commerce-backend/internal/delivery"
	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
	"github.com/SupreetAmrad/e-commerce-backend/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if logLevel != logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting storefront service...")
	logger.Infof("Backend API target: %s", cfg.BackendBaseURL)

	var store session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			logger.Fatalf("FATAL: Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		cancel()
		store = session.NewRedisStore(client, cfg.SessionTTL)
		logger.Info("Session store: Redis")
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info("Session store: in-memory")
	}

	catalogClient := clients.NewCatalogHTTPClient(cfg.BackendBaseURL, cfg.UpstreamTimeout, logger)
	authClient := clients.NewAuthHTTPClient(cfg.BackendBaseURL, cfg.UpstreamTimeout, logger)

	catalogUC := usecase.NewCatalogUseCase(catalogClient, store, logger)
	cartUC := usecase.NewCartUseCase(logger)
	authUC := usecase.NewAuthUseCase(authClient, logger)

	storefrontHandler := delivery.NewStorefrontHandler(catalogUC, logger)
	cartHandler := delivery.NewCartHandler(cartUC, logger)
	authHandler := delivery.NewAuthHandler(authUC, logger)

	router := delivery.NewRouter(store, storefrontHandler, cartHandler, authHandler, logger)

	logger.Infof("Storefront listening on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start storefront service: %v", err)
		os.Exit(1)
	}
}
