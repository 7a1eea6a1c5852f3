package repository

import (
	"context"
	"errors"

	"servicereviews/reviews-service/internal/app/reviews/entity"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrServiceNotFound = errors.New("service not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidID       = errors.New("invalid identifier")
)

// ServiceRepository определяет методы для работы с коллекцией services.
// Все списки отдаются от новых к старым
type ServiceRepository interface {
	// List возвращает не больше limit документов; limit <= 0 - без ограничения
	List(ctx context.Context, limit int64) ([]entity.Document, error)
	GetByID(ctx context.Context, id string) (entity.Document, error)
	Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
}

// ReviewRepository определяет методы для работы с коллекцией reviews.
// Методы с owner ограничивают выборку отзывами, у которых email == owner
type ReviewRepository interface {
	Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entity.Document, error)
	ListByEmail(ctx context.Context, email string) ([]entity.Document, error)
	GetOwned(ctx context.Context, id string, owner string) (entity.Document, error)
	// UpdateMessage возвращает ErrReviewNotFound, если ни один документ не совпал
	UpdateMessage(ctx context.Context, id string, owner string, message string) error
	// Delete возвращает число удаленных документов (0 - уже удален)
	Delete(ctx context.Context, id string, owner string) (int64, error)
}
