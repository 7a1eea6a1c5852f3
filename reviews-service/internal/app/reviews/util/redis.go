package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicereviews/pkg/metrics"
	"servicereviews/reviews-service/internal/app/reviews/entity"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	homeServicesCacheKey = "services:home"
	cacheKeyPrefix       = "services"
	metricsServiceName   = "reviews-service"
)

// cachedServices - обертка для BSON: сохраняет ObjectID и даты без потерь
type cachedServices struct {
	Services []entity.Document `bson:"services"`
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient подключается к Redis и проверяет соединение через PING
func NewRedisClient(addr, password string, db int, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client, ttl: ttl}, nil
}

func (r *RedisClient) GetHomeServices(ctx context.Context) ([]entity.Document, error) {
	data, err := r.client.Get(ctx, homeServicesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(metricsServiceName, cacheKeyPrefix)
			return nil, nil
		}
		metrics.RecordRedisError(metricsServiceName, "get")
		return nil, fmt.Errorf("failed to get home services from cache: %w", err)
	}

	var cached cachedServices
	if err := bson.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal home services: %w", err)
	}

	metrics.RecordCacheHit(metricsServiceName, cacheKeyPrefix)
	if cached.Services == nil {
		return []entity.Document{}, nil
	}
	return cached.Services, nil
}

func (r *RedisClient) SetHomeServices(ctx context.Context, services []entity.Document) error {
	data, err := bson.Marshal(cachedServices{Services: services})
	if err != nil {
		return fmt.Errorf("failed to marshal home services: %w", err)
	}

	if err := r.client.Set(ctx, homeServicesCacheKey, data, r.ttl).Err(); err != nil {
		metrics.RecordRedisError(metricsServiceName, "set")
		return fmt.Errorf("failed to set home services in cache: %w", err)
	}

	return nil
}

func (r *RedisClient) InvalidateHomeServices(ctx context.Context) error {
	if err := r.client.Del(ctx, homeServicesCacheKey).Err(); err != nil {
		metrics.RecordRedisError(metricsServiceName, "del")
		return fmt.Errorf("failed to delete home services from cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
