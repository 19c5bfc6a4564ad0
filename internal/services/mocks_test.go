package services_test

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter repositories.ProductFilter, page repositories.PageRequest) (*repositories.Page[models.Product], error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.Page[models.Product]), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetWithRelations(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context, productID string, page repositories.PageRequest) (*repositories.Page[models.Review], error) {
	args := m.Called(ctx, productID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.Page[models.Review]), args.Error(1)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) CountByRating(ctx context.Context, productID string) ([]repositories.RatingCount, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.RatingCount), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// MockSaltRepository is a mock implementation of repositories.SaltRepository
type MockSaltRepository struct {
	mock.Mock
}

func (m *MockSaltRepository) List(ctx context.Context, productID string, page repositories.PageRequest) (*repositories.Page[models.Salt], error) {
	args := m.Called(ctx, productID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.Page[models.Salt]), args.Error(1)
}

func (m *MockSaltRepository) GetByID(ctx context.Context, id string) (*models.Salt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salt), args.Error(1)
}

func (m *MockSaltRepository) Create(ctx context.Context, salt *models.Salt) error {
	args := m.Called(ctx, salt)
	return args.Error(0)
}

// MockDescriptionRepository is a mock implementation of repositories.DescriptionRepository
type MockDescriptionRepository struct {
	mock.Mock
}

func (m *MockDescriptionRepository) List(ctx context.Context, filter repositories.DescriptionFilter, page repositories.PageRequest) (*repositories.Page[models.Description], error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.Page[models.Description]), args.Error(1)
}

func (m *MockDescriptionRepository) GetByID(ctx context.Context, id string) (*models.Description, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Description), args.Error(1)
}

func (m *MockDescriptionRepository) Create(ctx context.Context, description *models.Description) error {
	args := m.Called(ctx, description)
	return args.Error(0)
}

// MockAppConfigRepository is a mock implementation of repositories.AppConfigRepository
type MockAppConfigRepository struct {
	mock.Mock
}

func (m *MockAppConfigRepository) All(ctx context.Context) ([]models.AppConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppConfig), args.Error(1)
}

func (m *MockAppConfigRepository) GetByKey(ctx context.Context, key string) (*models.AppConfig, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppConfig), args.Error(1)
}

func (m *MockAppConfigRepository) ListByPrefix(ctx context.Context, prefix string) ([]models.AppConfig, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppConfig), args.Error(1)
}

func (m *MockAppConfigRepository) Create(ctx context.Context, config *models.AppConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockAppConfigRepository) Update(ctx context.Context, config *models.AppConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, payload interface{}) error {
	args := m.Called(routingKey, payload)
	return args.Error(0)
}
