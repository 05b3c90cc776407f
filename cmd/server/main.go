package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"mentoria/internal/auth"
	"mentoria/internal/cache"
	"mentoria/internal/carometro"
	"mentoria/internal/config"
	"mentoria/internal/db"
	"mentoria/internal/handler"
	"mentoria/internal/logging"
	"mentoria/internal/repository"
	"mentoria/internal/router"
	"mentoria/internal/service"
)

// @title Mentoria API
// @version 1.0
// @description Mentorship platform: registration, cookie sessions and the Carômetro profile questionnaire.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name mentoria_session
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, logger)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB, logger)
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, continuing without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	contentRepo := repository.NewContentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SecretKey, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, logger.Named("auth"))
	aggregator := carometro.NewAggregator(carometro.Options{StrictGroups: cfg.StrictFormGroups})
	profileService := service.NewProfileService(profileRepo, aggregator, cacheClient, cfg.ProfileCacheTTL, logger.Named("profile"))
	contentService := service.NewContentService(contentRepo)

	// Initialize handlers
	session := handler.SessionCookie{
		Name:   cfg.SessionCookie,
		Secure: cfg.CookieSecure,
		TTL:    cfg.SessionTTL,
	}
	authHandler := handler.NewAuthHandler(authService, session, logger.Named("auth"))
	profileHandler := handler.NewProfileHandler(profileService, logger.Named("profile"))
	contentHandler := handler.NewContentHandler(contentService, logger.Named("content"))

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		logger.Named("http"),
		authService,
		authHandler,
		profileHandler,
		contentHandler,
	)

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("swagger", "/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
