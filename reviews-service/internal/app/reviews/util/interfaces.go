package util

import (
	"context"

	"servicereviews/reviews-service/internal/app/reviews/entity"
)

// HomeCache интерфейс кеша для списка GET /home-services.
// GetHomeServices возвращает nil, nil при промахе
type HomeCache interface {
	GetHomeServices(ctx context.Context) ([]entity.Document, error)
	SetHomeServices(ctx context.Context, services []entity.Document) error
	InvalidateHomeServices(ctx context.Context) error
}
