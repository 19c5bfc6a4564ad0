package services

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"
)

// DescriptionService handles business logic related to product descriptions.
type DescriptionService struct {
	repo repositories.DescriptionRepository
}

// NewDescriptionService creates a new DescriptionService.
func NewDescriptionService(repo repositories.DescriptionRepository) *DescriptionService {
	return &DescriptionService{repo: repo}
}

// ListDescriptions returns one page of descriptions matching filter.
func (s *DescriptionService) ListDescriptions(ctx context.Context, filter repositories.DescriptionFilter, page repositories.PageRequest) (*repositories.Page[models.Description], error) {
	return s.repo.List(ctx, filter, page)
}

// GetDescription retrieves a single description.
func (s *DescriptionService) GetDescription(ctx context.Context, id string) (*models.Description, error) {
	description, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Description not found")
	}
	return description, nil
}
