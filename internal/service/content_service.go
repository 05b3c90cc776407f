package service

import (
	"context"
	"fmt"
	"strings"

	"mentoria/internal/model"
	"mentoria/internal/repository"
)

const defaultContentLimit = 10

// ContentService serves the public site content.
type ContentService interface {
	ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error)
	ListArticles(ctx context.Context, limit int) ([]model.Article, error)
	SubmitContact(ctx context.Context, contact *model.Contact) error
}

type contentService struct {
	repo repository.ContentRepository
}

// NewContentService creates a new content service.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultContentLimit
	}
	return limit
}

func (s *contentService) ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, normalizeLimit(limit))
}

func (s *contentService) ListArticles(ctx context.Context, limit int) ([]model.Article, error) {
	return s.repo.ListArticles(ctx, normalizeLimit(limit))
}

func (s *contentService) SubmitContact(ctx context.Context, contact *model.Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	if contact.Phone != nil && strings.TrimSpace(*contact.Phone) == "" {
		contact.Phone = nil
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}
