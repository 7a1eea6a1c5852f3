package mocks

import (
	"context"

	"servicereviews/reviews-service/internal/app/reviews/entity"

	"github.com/stretchr/testify/mock"
)

// MockServiceRepository мок для ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, limit int64) ([]entity.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Document), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(entity.InsertResult), args.Error(1)
}

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(entity.InsertResult), args.Error(1)
}

func (m *MockReviewRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entity.Document, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockReviewRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockReviewRepository) GetOwned(ctx context.Context, id string, owner string) (entity.Document, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Document), args.Error(1)
}

func (m *MockReviewRepository) UpdateMessage(ctx context.Context, id string, owner string, message string) error {
	args := m.Called(ctx, id, owner, message)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string, owner string) (int64, error) {
	args := m.Called(ctx, id, owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockHomeCache мок для кеша home-services
type MockHomeCache struct {
	mock.Mock
}

func (m *MockHomeCache) GetHomeServices(ctx context.Context) ([]entity.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockHomeCache) SetHomeServices(ctx context.Context, services []entity.Document) error {
	args := m.Called(ctx, services)
	return args.Error(0)
}

func (m *MockHomeCache) InvalidateHomeServices(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
