package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"user-registry/internal/application/services"
	"user-registry/internal/config"
	"user-registry/internal/delivery/handler"
	"user-registry/internal/infrastructure"
	"user-registry/internal/infrastructure/db"
)

func main() {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	gormDB, err := db.Connect(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	userRepo := db.NewUserRepository(gormDB)
	if err := db.Seed(context.Background(), userRepo, logger); err != nil {
		logger.Fatal("failed to load sample users", zap.Error(err))
	}

	mailer := infrastructure.NewWelcomeMailer(cfg.SendgridAPIKey, cfg.MailSender, logger)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	rateLimiter := infrastructure.NewRateLimiter(1, 5)
	userService := services.NewUserService(userRepo, userRepo, mailer)

	e := handler.NewRouter(
		logger,
		handler.NewAuthHandler(jwtService, rateLimiter),
		handler.NewUserCommandHandler(userService),
		handler.NewUserQueryHandler(userService),
		handler.NewAuthMiddleware(jwtService),
	)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.AppPort)
		logger.Info("server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		zapConfig.Level = parsed
	}

	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	return logger
}
