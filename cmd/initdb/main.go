package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mentoria/internal/auth"
	"mentoria/internal/config"
	"mentoria/internal/db"
	"mentoria/internal/logging"
	"mentoria/internal/repository"
	"mentoria/internal/service"
)

const adminUsername = "admin"

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB, logger)
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database initialized and tables created")

	userRepo := repository.NewUserRepository(gormDB)
	// No cache: initdb never revokes sessions.
	authService := service.NewAuthService(
		userRepo,
		auth.NewJWTService(cfg.SecretKey, cfg.SessionTTL),
		auth.NewTokenStore(nil),
		logger.Named("auth"),
	)

	created, err := ensureAdmin(context.Background(), userRepo, authService, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("failed to create admin user", zap.Error(err))
	}
	if created {
		logger.Info("admin user created", zap.String("email", logging.MaskEmail(cfg.AdminEmail)))
	} else {
		logger.Info("admin user already present or not configured", zap.String("email", logging.MaskEmail(cfg.AdminEmail)))
	}
}

// ensureAdmin registers the admin account unless it exists or no password is configured.
func ensureAdmin(ctx context.Context, repo repository.UserRepository, authService service.AuthService, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return false, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if password == "" {
		return false, nil
	}

	if _, err := authService.Register(ctx, adminUsername, email, password); err != nil {
		return false, fmt.Errorf("register admin: %w", err)
	}
	return true, nil
}
