package repository

import (
	"context"
	"errors"
	"fmt"

	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository создает репозиторий услуг поверх коллекции services
func NewServiceRepository(db *mongo.Database) ServiceRepository {
	return &serviceRepository{
		collection: db.Collection(entity.ServicesCollection),
	}
}

// List возвращает услуги от новых к старым.
// ObjectID начинается с времени создания, поэтому сортировка по _id = порядок вставки
func (r *serviceRepository) List(ctx context.Context, limit int64) ([]entity.Document, error) {
	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpFind, entity.ServicesCollection)

	opts := options.Find().SetSort(bson.D{{Key: entity.FieldID, Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	services, err := findAll(ctx, r.collection, bson.M{}, opts)
	timer.ObserveDuration(err)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (entity.Document, error) {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpFind, entity.ServicesCollection)

	var service entity.Document
	err = r.collection.FindOne(ctx, bson.M{entity.FieldID: objectID}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		timer.ObserveDuration(nil)
		return nil, ErrServiceNotFound
	}
	timer.ObserveDuration(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	timer := metrics.NewDbTimer(MetricsServiceName, metrics.DbOpInsert, entity.ServicesCollection)

	result, err := insertOne(ctx, r.collection, doc)
	timer.ObserveDuration(err)
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("failed to create service: %w", err)
	}

	return result, nil
}

func findAll(ctx context.Context, collection *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]entity.Document, error) {
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]entity.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return docs, nil
}

// insertOne вставляет документ без клиентского _id.
// Acknowledged=false, если драйвер не вернул ObjectID
func insertOne(ctx context.Context, collection *mongo.Collection, doc entity.Document) (entity.InsertResult, error) {
	result, err := collection.InsertOne(ctx, doc.WithoutID())
	if err != nil {
		return entity.InsertResult{}, err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return entity.InsertResult{}, nil
	}

	return entity.InsertResult{Acknowledged: true, InsertedID: oid}, nil
}
