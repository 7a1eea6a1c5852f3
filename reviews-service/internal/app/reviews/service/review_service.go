package service

import (
	"context"
	"fmt"

	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/infrastructure"
	"servicereviews/reviews-service/internal/app/reviews/repository"
)

// ReviewService обрабатывает бизнес-логику отзывов.
// owner - email из проверенного токена; отзывы с другим email для владельца не существуют
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	events     eventPublisher
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	publisher infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		events:     eventPublisher{publisher: publisher},
	}
}

// CreateReview сохраняет тело отзыва и публикует REVIEW_CREATED
func (s *ReviewService) CreateReview(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	result, err := s.reviewRepo.Create(ctx, doc)
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewOperations.WithLabelValues("create").Inc()

	if result.Acknowledged {
		s.events.publish(ctx, entity.DomainEvent{
			EventType:  entity.EventReviewCreated,
			DocumentID: result.InsertedID.Hex(),
			ServiceID:  doc.String(entity.FieldServiceID),
			Email:      doc.String(entity.FieldEmail),
		})
	}

	return result, nil
}

// GetReviewsByService получает отзывы по serviceId, от новых к старым.
// serviceId должен быть ObjectID, но в документах отзывов хранится строкой
func (s *ReviewService) GetReviewsByService(ctx context.Context, serviceID string) ([]entity.Document, error) {
	if _, err := repository.ParseObjectID(serviceID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// GetUserReviews получает все отзывы пользователя
func (s *ReviewService) GetUserReviews(ctx context.Context, email string) ([]entity.Document, error) {
	reviews, err := s.reviewRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) GetReview(ctx context.Context, reviewID string, owner string) (entity.Document, error) {
	review, err := s.reviewRepo.GetOwned(ctx, reviewID, owner)
	if err != nil {
		return nil, translateRepoError(err, "failed to get review")
	}
	return review, nil
}

// UpdateReviewMessage заменяет message, остальные поля не трогает
func (s *ReviewService) UpdateReviewMessage(ctx context.Context, reviewID string, owner string, message string) error {
	if err := s.reviewRepo.UpdateMessage(ctx, reviewID, owner, message); err != nil {
		return translateRepoError(err, "failed to update review")
	}

	metrics.ReviewOperations.WithLabelValues("update").Inc()
	s.events.publish(ctx, entity.DomainEvent{
		EventType:  entity.EventReviewUpdated,
		DocumentID: reviewID,
		Email:      owner,
	})

	return nil
}

// DeleteReview проверяет наличие отзыва и удаляет его.
// Проверка и удаление не атомарны: если между ними отзыв удалил параллельный запрос,
// возвращается deleted=false без ошибки
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string, owner string) (bool, error) {
	if _, err := s.reviewRepo.GetOwned(ctx, reviewID, owner); err != nil {
		return false, translateRepoError(err, "failed to get review")
	}

	deleted, err := s.reviewRepo.Delete(ctx, reviewID, owner)
	if err != nil {
		return false, translateRepoError(err, "failed to delete review")
	}
	if deleted == 0 {
		return false, nil
	}

	metrics.ReviewOperations.WithLabelValues("delete").Inc()
	s.events.publish(ctx, entity.DomainEvent{
		EventType:  entity.EventReviewDeleted,
		DocumentID: reviewID,
		Email:      owner,
	})

	return true, nil
}
