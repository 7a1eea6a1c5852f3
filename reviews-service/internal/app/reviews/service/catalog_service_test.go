package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/repository"
	"servicereviews/reviews-service/internal/app/reviews/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testHomeLimit = int64(3)

func TestHomeServices_NoCache(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	service := NewCatalogService(serviceRepo, nil, nil, testHomeLimit)

	ctx := context.Background()
	services := []entity.Document{{"name": "a"}, {"name": "b"}, {"name": "c"}}
	serviceRepo.On("List", ctx, testHomeLimit).Return(services, nil)

	result, err := service.HomeServices(ctx)

	assert.NoError(t, err)
	assert.Equal(t, services, result)
}

func TestHomeServices_CacheHit(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockHomeCache)
	service := NewCatalogService(serviceRepo, cache, nil, testHomeLimit)

	ctx := context.Background()
	cached := []entity.Document{{"name": "cached"}}
	cache.On("GetHomeServices", ctx).Return(cached, nil)

	result, err := service.HomeServices(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	serviceRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHomeServices_CacheMissFillsCache(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockHomeCache)
	service := NewCatalogService(serviceRepo, cache, nil, testHomeLimit)

	ctx := context.Background()
	services := []entity.Document{{"name": "a"}}
	cache.On("GetHomeServices", ctx).Return(nil, nil)
	serviceRepo.On("List", ctx, testHomeLimit).Return(services, nil)
	cache.On("SetHomeServices", ctx, services).Return(nil)

	result, err := service.HomeServices(ctx)

	assert.NoError(t, err)
	assert.Equal(t, services, result)
	cache.AssertExpectations(t)
}

func TestHomeServices_CacheErrorFallsBackToStore(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockHomeCache)
	service := NewCatalogService(serviceRepo, cache, nil, testHomeLimit)

	ctx := context.Background()
	services := []entity.Document{{"name": "a"}}
	cache.On("GetHomeServices", ctx).Return(nil, errors.New("redis down"))
	serviceRepo.On("List", ctx, testHomeLimit).Return(services, nil)
	cache.On("SetHomeServices", ctx, services).Return(errors.New("redis down"))

	result, err := service.HomeServices(ctx)

	assert.NoError(t, err)
	assert.Equal(t, services, result)
}

func TestAllServices_NoLimit(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	service := NewCatalogService(serviceRepo, nil, nil, testHomeLimit)

	ctx := context.Background()
	serviceRepo.On("List", ctx, int64(0)).Return(nil, errors.New("db error"))

	result, err := service.AllServices(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestGetService_NotFound(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	service := NewCatalogService(serviceRepo, nil, nil, testHomeLimit)

	ctx := context.Background()
	serviceRepo.On("GetByID", ctx, "id").Return(nil, repository.ErrServiceNotFound)

	_, err := service.GetService(ctx, "id")

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetService_StoreErrorWrapped(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	service := NewCatalogService(serviceRepo, nil, nil, testHomeLimit)

	ctx := context.Background()
	storeErr := errors.New("connection reset")
	serviceRepo.On("GetByID", ctx, "id").Return(nil, storeErr)

	_, err := service.GetService(ctx, "id")

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateService_InvalidatesCacheAndPublishes(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockHomeCache)
	kafkaProducer := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	service := NewCatalogService(serviceRepo, cache, kafkaProducer, testHomeLimit)

	ctx := context.Background()
	doc := entity.Document{"name": "Plumbing"}
	insertedID := primitive.NewObjectID()
	serviceRepo.On("Create", ctx, doc).Return(entity.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil)
	cache.On("InvalidateHomeServices", ctx).Return(nil)
	kafkaProducer.On("PublishMessage", ctx, insertedID.Hex(), mock.Anything).Return(nil)

	result, err := service.CreateService(ctx, doc)

	require.NoError(t, err)
	assert.Equal(t, insertedID, result.InsertedID)
	cache.AssertExpectations(t)

	require.Len(t, kafkaProducer.Messages, 1)
	var event entity.DomainEvent
	require.NoError(t, json.Unmarshal(kafkaProducer.Messages[0], &event))
	assert.Equal(t, entity.EventServiceCreated, event.EventType)
	assert.Equal(t, insertedID.Hex(), event.DocumentID)
}

func TestCreateService_NotAcknowledged(t *testing.T) {
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockHomeCache)
	service := NewCatalogService(serviceRepo, cache, nil, testHomeLimit)

	ctx := context.Background()
	serviceRepo.On("Create", ctx, mock.Anything).Return(entity.InsertResult{Acknowledged: false}, nil)

	_, err := service.CreateService(ctx, entity.Document{"name": "x"})

	assert.ErrorIs(t, err, ErrNotInserted)
	cache.AssertNotCalled(t, "InvalidateHomeServices", mock.Anything)
}
