package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mentoria/internal/model"
)

// ProfileRepository defines Carômetro persistence operations.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	// FindByUserIDForUpdate locks the user's profile row until the surrounding transaction ends.
	FindByUserIDForUpdate(ctx context.Context, userID uint) (*model.Profile, error)
	// Save inserts a new profile or overwrites every column of an existing one.
	Save(ctx context.Context, profile *model.Profile) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProfileRepository) error) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID finds the profile owned by a user.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserIDForUpdate finds the profile with a row-level lock.
func (r *profileRepository) FindByUserIDForUpdate(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save persists all fields of the profile.
func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// WithTransaction executes a function within a database transaction.
// Any error returned by fn rolls the whole transaction back.
func (r *profileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProfileRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &profileRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
