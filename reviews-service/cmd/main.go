package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"servicereviews/pkg/logger"
	"servicereviews/reviews-service/internal/app/reviews/config"
	"servicereviews/reviews-service/internal/app/reviews/handler"
	"servicereviews/reviews-service/internal/app/reviews/infrastructure"
	"servicereviews/reviews-service/internal/app/reviews/infrastructure/messaging"
	"servicereviews/reviews-service/internal/app/reviews/repository"
	"servicereviews/reviews-service/internal/app/reviews/service"
	"servicereviews/reviews-service/internal/app/reviews/util"
)

const serviceName = "reviews-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Log.Level)

	if cfg.Log.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.Log.LogstashAddr, serviceName, cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Log.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	var (
		serviceRepo repository.ServiceRepository
		reviewRepo  repository.ReviewRepository
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		serviceRepo = repository.NewMemoryServiceRepository()
		reviewRepo = repository.NewMemoryReviewRepository()
		logger.Warn().Msg("Using in-memory store, data will be lost on restart")
	default:
		mongoClient, err := connectMongoDB(cfg.MongoDB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := mongoClient.Disconnect(ctx); err != nil {
				logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
			}
		}()
		logger.Info().
			Str("database", cfg.MongoDB.Database).
			Msg("Connected to MongoDB")

		db := mongoClient.Database(cfg.MongoDB.Database)
		serviceRepo = repository.NewServiceRepository(db)
		reviewRepo = repository.NewReviewRepository(db)
	}

	var cache util.HomeCache
	if cfg.Redis.CacheEnabled() {
		redisClient, err := util.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Redis, home services cache disabled")
		} else {
			defer redisClient.Close()
			cache = redisClient
			logger.Info().
				Str("addr", cfg.Redis.Addr).
				Dur("ttl", cfg.Redis.CacheTTL).
				Msg("Connected to Redis")
		}
	}

	var publisher infrastructure.MessagePublisher = messaging.NewNoopPublisher()
	if cfg.Kafka.EventsEnabled() {
		kafkaProducer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaProducer.Close()
		publisher = kafkaProducer
		logger.Info().
			Str("topic", cfg.Kafka.Topic).
			Msg("Initialized Kafka producer")
	}

	catalogService := service.NewCatalogService(serviceRepo, cache, publisher, cfg.Server.HomeServicesLimit)
	reviewService := service.NewReviewService(reviewRepo, publisher)

	tokens := util.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	router := handler.SetupRoutes(handler.Handlers{
		Auth:     handler.NewAuthHandler(tokens),
		Services: handler.NewServiceHandler(catalogService),
		Reviews:  handler.NewReviewHandler(reviewService),
	}, handler.NewAuthMiddleware(tokens), cfg.Server.CORSAllowOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("store", cfg.StoreDriver).
			Msg("Starting Reviews Service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Reviews Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	logger.Info().Msg("Reviews Service stopped gracefully")
}

// connectMongoDB подключается один раз и проверяет соединение ping.
// Вложенные документы декодируются как bson.M, чтобы JSON-ответы оставались объектами
func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}
