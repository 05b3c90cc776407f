package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mentoria/internal/cache"
	"mentoria/internal/carometro"
	apperrors "mentoria/internal/errors"
	"mentoria/internal/model"
	"mentoria/internal/observability"
	"mentoria/internal/repository"
)

// ProfileService exposes Carômetro operations.
type ProfileService interface {
	// Submit aggregates the form and upserts the user's profile in one transaction.
	Submit(ctx context.Context, userID uint, form url.Values) (*model.Profile, error)
	GetByUser(ctx context.Context, userID uint) (*model.Profile, error)
}

type profileService struct {
	repo       repository.ProfileRepository
	aggregator *carometro.Aggregator
	cache      *cache.Client
	cacheTTL   time.Duration
	log        *zap.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	repo repository.ProfileRepository,
	aggregator *carometro.Aggregator,
	cache *cache.Client,
	cacheTTL time.Duration,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		repo:       repo,
		aggregator: aggregator,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// mysqlDeadlock is ER_LOCK_DEADLOCK. Two first submissions for the same user both hold
// the gap lock from FOR UPDATE, so InnoDB usually aborts one insert with it.
const mysqlDeadlock = 1213

func isWriteConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDeadlock
}

func (s *profileService) versionKey(userID uint) string {
	return fmt.Sprintf("profile:%d:version", userID)
}

func (s *profileService) entryKey(userID uint, version int64) string {
	return fmt.Sprintf("profile:%d:v%d", userID, version)
}

// cacheKey embeds the user's profile version, which Submit bumps after every commit.
// A read that raced a submit can only fill the previous version's key.
func (s *profileService) cacheKey(ctx context.Context, userID uint) string {
	return s.entryKey(userID, s.cache.Version(ctx, s.versionKey(userID)))
}

// Submit reads the existing profile (locked) or starts a new one, overwrites it with the
// form and commits. Nothing is written when aggregation or persistence fails.
func (s *profileService) Submit(ctx context.Context, userID uint, form url.Values) (*model.Profile, error) {
	var saved *model.Profile
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.ProfileRepository) error {
		existing, err := txRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load profile: %w", err)
		}

		profile, err := s.aggregator.Aggregate(existing, userID, form)
		if err != nil {
			return err
		}

		if err := txRepo.Save(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		saved = profile
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrValidation):
		observability.ProfileSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	case isWriteConflict(err):
		observability.ProfileSubmissions.WithLabelValues("conflict").Inc()
		s.log.Warn("concurrent profile creation rejected", zap.Uint("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrProfileConflict
	default:
		observability.ProfileSubmissions.WithLabelValues("error").Inc()
		s.log.Error("failed to save profile", zap.Uint("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrProfileSave
	}

	if version := s.cache.Bump(ctx, s.versionKey(userID)); version > 0 {
		_ = s.cache.Delete(ctx, s.entryKey(userID, version-1))
	}
	observability.ProfileSubmissions.WithLabelValues("success").Inc()
	s.log.Info("profile saved", zap.Uint("user_id", userID), zap.Uint64("profile_id", saved.ID))
	return saved, nil
}

// GetByUser returns the user's profile, served from cache when possible.
func (s *profileService) GetByUser(ctx context.Context, userID uint) (*model.Profile, error) {
	key := s.cacheKey(ctx, userID)

	var cached model.Profile
	if s.cache.GetJSON(ctx, "profile", key, &cached) {
		return &cached, nil
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	s.cache.SetJSON(ctx, key, profile, s.cacheTTL)
	return profile, nil
}
