package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mentoria/internal/auth"
	apperrors "mentoria/internal/errors"
	"mentoria/internal/logging"
	"mentoria/internal/model"
	"mentoria/internal/observability"
	"mentoria/internal/repository"
)

const bcryptCost = 10

// ErrInvalidSession is returned when a session token is invalid, expired or revoked.
var ErrInvalidSession = errors.New("invalid or expired session")

// AuthService handles registration and session operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (sessionToken string, user *model.User, err error)
	Logout(ctx context.Context, sessionToken string) error
	Authenticate(ctx context.Context, sessionToken string) (*auth.Claims, error)
	// DeleteAccount removes the session's user after re-checking the password.
	// The profile goes with it through the cascading foreign key.
	DeleteAccount(ctx context.Context, sessionToken, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	log        *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, log *zap.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Register creates a new user with a hashed password.
// Username and email must both be unused; a rejected registration creates nothing.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.ensureAvailable(ctx, username, email); err != nil {
		observability.Registrations.WithLabelValues("rejected").Inc()
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent registration
			observability.Registrations.WithLabelValues("rejected").Inc()
			return nil, s.conflictFor(ctx, email)
		}
		observability.Registrations.WithLabelValues("error").Inc()
		s.log.Error("failed to create user", zap.String("email", logging.MaskEmail(email)), zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	observability.Registrations.WithLabelValues("success").Inc()
	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

func (s *authService) ensureAvailable(ctx context.Context, username, email string) error {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

func (s *authService) conflictFor(ctx context.Context, email string) error {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return apperrors.ErrEmailTaken
	}
	return apperrors.ErrUsernameTaken
}

// Login verifies credentials and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("failed to load user for login", zap.Error(err))
		}
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	_, token, err := s.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	return token, user, nil
}

// Logout revokes the session until it would have expired.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	claims, err := s.jwtService.ValidateToken(sessionToken)
	if err != nil {
		return ErrInvalidSession
	}
	return s.tokenStore.RevokeSession(ctx, claims.ID, claims.Remaining())
}

// Authenticate validates a session token and checks it was not revoked.
func (s *authService) Authenticate(ctx context.Context, sessionToken string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(sessionToken)
	if err != nil {
		return nil, ErrInvalidSession
	}
	revoked, err := s.tokenStore.IsSessionRevoked(ctx, claims.ID)
	if err != nil || revoked {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (s *authService) DeleteAccount(ctx context.Context, sessionToken, password string) error {
	claims, err := s.Authenticate(ctx, sessionToken)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidSession
		}
		return fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		s.log.Error("failed to delete user", zap.Uint("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.tokenStore.RevokeSession(ctx, claims.ID, claims.Remaining()); err != nil {
		s.log.Warn("failed to revoke session of deleted account", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	s.log.Info("account deleted", zap.Uint("user_id", user.ID))
	return nil
}
