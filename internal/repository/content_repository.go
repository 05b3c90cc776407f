package repository

import (
	"context"

	"gorm.io/gorm"

	"mentoria/internal/model"
)

// ContentRepository defines persistence for the public site content.
type ContentRepository interface {
	ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error)
	ListArticles(ctx context.Context, limit int) ([]model.Article, error)
	CreateContact(ctx context.Context, contact *model.Contact) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// ListTestimonials returns the newest testimonials first.
func (r *contentRepository) ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Order("date_added DESC").Limit(limit).Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// ListArticles returns the newest articles first.
func (r *contentRepository) ListArticles(ctx context.Context, limit int) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Order("date_posted DESC").Limit(limit).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// CreateContact stores a contact form message.
func (r *contentRepository) CreateContact(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
