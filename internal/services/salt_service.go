package services

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"
)

// SaltService handles business logic related to salts.
type SaltService struct {
	repo repositories.SaltRepository
}

// NewSaltService creates a new SaltService.
func NewSaltService(repo repositories.SaltRepository) *SaltService {
	return &SaltService{repo: repo}
}

// ListSalts returns one page of salts, restricted to productID when it is set.
func (s *SaltService) ListSalts(ctx context.Context, productID string, page repositories.PageRequest) (*repositories.Page[models.Salt], error) {
	return s.repo.List(ctx, productID, page)
}

// GetSalt retrieves a single salt.
func (s *SaltService) GetSalt(ctx context.Context, id string) (*models.Salt, error) {
	salt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Salt not found")
	}
	return salt, nil
}
