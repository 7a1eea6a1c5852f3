package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicereviews/pkg/logger"
	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository создает новый репозиторий отзывов.
// Индексы по serviceId и email создаются сразу, ошибка создания не фатальна
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	collection := db.Collection(entity.ReviewsCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: entity.FieldServiceID, Value: 1}},
			Options: options.Index().SetName("service_id_idx"),
		},
		{
			Keys:    bson.D{{Key: entity.FieldEmail, Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn().Err(err).Msg("Failed to create review indexes")
	}

	return &reviewRepository{
		collection: collection,
	}
}

// Create сохраняет тело отзыва как есть
func (r *reviewRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpInsert, entity.ReviewsCollection)

	result, err := insertOne(ctx, r.collection, doc)
	timer.ObserveDuration(err)
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("failed to create review: %w", err)
	}

	return result, nil
}

// ListByServiceID использует индекс service_id_idx.
// serviceId - слабая ссылка и сравнивается как строка; формат проверяет service layer
func (r *reviewRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entity.Document, error) {
	return r.list(ctx, bson.M{entity.FieldServiceID: serviceID})
}

// ListByEmail использует индекс email_idx
func (r *reviewRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	return r.list(ctx, bson.M{entity.FieldEmail: email})
}

func (r *reviewRepository) list(ctx context.Context, filter bson.M) ([]entity.Document, error) {
	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpFind, entity.ReviewsCollection)

	opts := options.Find().SetSort(bson.D{{Key: entity.FieldID, Value: -1}})
	reviews, err := findAll(ctx, r.collection, filter, opts)
	timer.ObserveDuration(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) GetOwned(ctx context.Context, id string, owner string) (entity.Document, error) {
	filter, err := ownedFilter(id, owner)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpFind, entity.ReviewsCollection)

	var review entity.Document
	err = r.collection.FindOne(ctx, filter).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		timer.ObserveDuration(nil)
		return nil, ErrReviewNotFound
	}
	timer.ObserveDuration(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// UpdateMessage заменяет только поле message
func (r *reviewRepository) UpdateMessage(ctx context.Context, id string, owner string, message string) error {
	filter, err := ownedFilter(id, owner)
	if err != nil {
		return err
	}

	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpUpdate, entity.ReviewsCollection)

	update := bson.M{
		"$set": bson.M{
			entity.FieldMessage: message,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	timer.ObserveDuration(err)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string, owner string) (int64, error) {
	filter, err := ownedFilter(id, owner)
	if err != nil {
		return 0, err
	}

	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpDelete, entity.ReviewsCollection)

	result, err := r.collection.DeleteOne(ctx, filter)
	timer.ObserveDuration(err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	return result.DeletedCount, nil
}

func ownedFilter(id string, owner string) (bson.M, error) {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{entity.FieldID: objectID, entity.FieldEmail: owner}, nil
}
