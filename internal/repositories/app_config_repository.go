package repositories

import (
	"context"
	"strings"

	"medingen/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// key is a reserved word in MySQL, so the column is always referenced through
// clauses that let the dialect quote it.
var keyColumn = clause.Column{Name: "key"}

var byKey = clause.OrderByColumn{Column: keyColumn}

// AppConfigRepository defines the interface for app config data access.
type AppConfigRepository interface {
	All(ctx context.Context) ([]models.AppConfig, error)
	GetByKey(ctx context.Context, key string) (*models.AppConfig, error)
	ListByPrefix(ctx context.Context, prefix string) ([]models.AppConfig, error)
	Create(ctx context.Context, config *models.AppConfig) error
	Update(ctx context.Context, config *models.AppConfig) error
}

// GORMAppConfigRepository is a GORM implementation of AppConfigRepository.
type GORMAppConfigRepository struct {
	db *gorm.DB
}

// NewGORMAppConfigRepository creates a new instance of GORMAppConfigRepository.
func NewGORMAppConfigRepository(db *gorm.DB) *GORMAppConfigRepository {
	return &GORMAppConfigRepository{db: db}
}

// All returns every config row ordered by key.
func (r *GORMAppConfigRepository) All(ctx context.Context) ([]models.AppConfig, error) {
	var configs []models.AppConfig
	if err := r.db.WithContext(ctx).Order(byKey).Find(&configs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list app config")
	}
	return configs, nil
}

// GetByKey retrieves one config row by its exact key.
func (r *GORMAppConfigRepository) GetByKey(ctx context.Context, key string) (*models.AppConfig, error) {
	var config models.AppConfig
	if err := r.db.WithContext(ctx).Where(clause.Eq{Column: keyColumn, Value: key}).First(&config).Error; err != nil {
		return nil, translate(err, "app config %s", key)
	}
	return &config, nil
}

// ListByPrefix returns the rows whose key starts with prefix, compared byte for
// byte. LIKE only narrows the scan: its wildcards and case-insensitive
// collations could otherwise widen the match.
func (r *GORMAppConfigRepository) ListByPrefix(ctx context.Context, prefix string) ([]models.AppConfig, error) {
	var candidates []models.AppConfig
	if err := r.db.WithContext(ctx).Where(clause.Like{Column: keyColumn, Value: prefix + "%"}).Order(byKey).Find(&candidates).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list app config with prefix %s", prefix)
	}

	configs := make([]models.AppConfig, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c.Key, prefix) {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

// Create inserts a config row.
func (r *GORMAppConfigRepository) Create(ctx context.Context, config *models.AppConfig) error {
	if err := r.db.WithContext(ctx).Create(config).Error; err != nil {
		return translate(err, "failed to create app config %s", config.Key)
	}
	return nil
}

// Update writes every column of an existing record; UpdatedAt is refreshed by GORM.
func (r *GORMAppConfigRepository) Update(ctx context.Context, config *models.AppConfig) error {
	res := r.db.WithContext(ctx).Model(config).Select("*").Omit("id", "created_at").Updates(config)
	if res.Error != nil {
		return translate(res.Error, "failed to update app config %s", config.Key)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "app config %s", config.Key)
	}
	return nil
}
