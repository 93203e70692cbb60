package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"eventbackend/internal/config"
	"eventbackend/internal/repository"
	"eventbackend/internal/server"
	"eventbackend/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Load configuration (.env is best effort, the environment wins)
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on the environment")
	}
	cfg := config.Load()
	if cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not set - using the insecure built-in default, do not deploy like this")
	}
	if cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Warn("ADMIN_PASSWORD not set - the bootstrap admin uses the insecure built-in default")
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Seed the designated admin account when it is missing
	userRepo := repository.NewUserRepository(db, logger)
	authService := service.NewAuthService(userRepo, logger)
	if err := authService.BootstrapAdmin("Administrator", cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	// Optional schedule cache
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(pingCtx).Err(); err != nil {
			cancel()
			logger.Fatal("Redis ping failed", zap.Error(err))
		}
		cancel()
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("Redis close error", zap.Error(err))
			}
		}()
		logger.Info("Schedule cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, log, cache)
	srv.Run(cfg.ServerPort)
}
