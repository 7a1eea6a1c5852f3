package service

import (
	"context"
	"errors"
	"fmt"

	"servicereviews/pkg/logger"
	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/infrastructure"
	"servicereviews/reviews-service/internal/app/reviews/repository"
	"servicereviews/reviews-service/internal/app/reviews/util"
)

// CatalogService обрабатывает коллекцию services.
// Кеш home-services необязателен: при cache == nil чтение идет напрямую из хранилища
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	cache       util.HomeCache
	events      eventPublisher
	homeLimit   int64
}

func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	cache util.HomeCache,
	publisher infrastructure.MessagePublisher,
	homeLimit int64,
) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		cache:       cache,
		events:      eventPublisher{publisher: publisher},
		homeLimit:   homeLimit,
	}
}

// HomeServices возвращает homeLimit самых новых услуг
func (s *CatalogService) HomeServices(ctx context.Context) ([]entity.Document, error) {
	if s.cache != nil {
		cached, err := s.cache.GetHomeServices(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Home services cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	services, err := s.serviceRepo.List(ctx, s.homeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get home services: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetHomeServices(ctx, services); err != nil {
			logger.Warn().Err(err).Msg("Home services cache write failed")
		}
	}

	return services, nil
}

// AllServices возвращает все услуги от новых к старым
func (s *CatalogService) AllServices(ctx context.Context) ([]entity.Document, error) {
	services, err := s.serviceRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	return services, nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (entity.Document, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, fmt.Sprintf("failed to get service %s", id))
	}
	return service, nil
}

// CreateService сохраняет тело как есть, инвалидирует кеш и публикует SERVICE_CREATED
func (s *CatalogService) CreateService(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	result, err := s.serviceRepo.Create(ctx, doc)
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("failed to create service: %w", err)
	}
	if !result.Acknowledged {
		return result, ErrNotInserted
	}

	metrics.ServicesCreated.Inc()

	if s.cache != nil {
		if err := s.cache.InvalidateHomeServices(ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to invalidate home services cache")
		}
	}

	s.events.publish(ctx, entity.DomainEvent{
		EventType:  entity.EventServiceCreated,
		DocumentID: result.InsertedID.Hex(),
	})

	return result, nil
}

// translateRepoError переводит ошибки репозитория в ошибки service layer
func translateRepoError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrServiceNotFound):
		return ErrServiceNotFound
	case errors.Is(err, repository.ErrReviewNotFound):
		return ErrReviewNotFound
	case errors.Is(err, ErrInvalidID):
		return err
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
