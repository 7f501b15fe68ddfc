package service

import (
	"context"
	"strings"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
)

// Repository is the persistence surface the contact service needs.
type Repository interface {
	Create(ctx context.Context, name, email, message string) (int64, error)
	List(ctx context.Context) ([]domain.Contact, error)
}

// ContactService validates and stores contact-form submissions.
type ContactService struct {
	repo Repository
}

func NewContactService(repo Repository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit validates the submission and appends it, returning the record id.
// Nothing is persisted when validation fails.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (int64, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return 0, domain.ErrMissingFields
	}
	if !domain.ValidEmail(email) {
		return 0, domain.ErrInvalidEmail
	}
	return s.repo.Create(ctx, name, email, message)
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}
