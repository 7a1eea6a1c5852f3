package service

import (
	"context"

	"servicereviews/reviews-service/internal/app/reviews/entity"
)

type CatalogServiceInterface interface {
	HomeServices(ctx context.Context) ([]entity.Document, error)
	AllServices(ctx context.Context) ([]entity.Document, error)
	GetService(ctx context.Context, id string) (entity.Document, error)
	CreateService(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
}

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
	GetReviewsByService(ctx context.Context, serviceID string) ([]entity.Document, error)
	GetUserReviews(ctx context.Context, email string) ([]entity.Document, error)
	GetReview(ctx context.Context, reviewID string, owner string) (entity.Document, error)
	UpdateReviewMessage(ctx context.Context, reviewID string, owner string, message string) error
	DeleteReview(ctx context.Context, reviewID string, owner string) (bool, error)
}
