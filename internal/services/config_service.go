package services

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"
)

// ConfigService exposes the dynamic app configuration.
type ConfigService struct {
	repo repositories.AppConfigRepository
}

// NewConfigService creates a new ConfigService.
func NewConfigService(repo repositories.AppConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// GetAll returns every setting as key to decoded value.
func (s *ConfigService) GetAll(ctx context.Context) (map[string]models.ConfigValue, error) {
	configs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(configs), nil
}

// GetOne returns the full record for key.
func (s *ConfigService) GetOne(ctx context.Context, key string) (*models.AppConfig, error) {
	config, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, notFound(err, "Configuration not found")
	}
	return config, nil
}

// GetByCategory returns the settings whose key starts with category followed by a dot.
func (s *ConfigService) GetByCategory(ctx context.Context, category string) (map[string]models.ConfigValue, error) {
	configs, err := s.repo.ListByPrefix(ctx, category+".")
	if err != nil {
		return nil, err
	}
	return decodeAll(configs), nil
}

func decodeAll(configs []models.AppConfig) map[string]models.ConfigValue {
	values := make(map[string]models.ConfigValue, len(configs))
	for i := range configs {
		values[configs[i].Key] = configs[i].DecodedValue()
	}
	return values
}
