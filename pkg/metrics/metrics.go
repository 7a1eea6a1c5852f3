package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace - общий префикс всех метрик сервиса
const Namespace = "service_review"

// HTTP
var (
	// HttpRequestsTotal labels: service, method, path, status
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route template and status code.",
	}, []string{"service", "method", "path", "status"})

	// HttpRequestDuration пример: histogram_quantile(0.95, rate(service_review_http_request_duration_seconds_bucket[5m]))
	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route template.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10),
	}, []string{"service", "method", "path"})

	HttpRequestsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	}, []string{"service"})
)

// Хранилище документов (MongoDB или in-memory)
var (
	DbQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Document store operation latency by collection.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 8),
	}, []string{"service", "operation", "collection"})

	DbErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Failed document store operations.",
	}, []string{"service", "operation"})
)

// Кеш home-services
var (
	RedisCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Home services cache hits.",
	}, []string{"service", "key_prefix"})

	RedisCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Home services cache misses.",
	}, []string{"service", "key_prefix"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "errors_total",
		Help:      "Failed Redis commands.",
	}, []string{"service", "operation"})
)

// События
var (
	KafkaMessagesProduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "events",
		Name:      "produced_total",
		Help:      "Domain events written to Kafka.",
	}, []string{"service", "topic"})

	KafkaProduceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "events",
		Name:      "produce_duration_seconds",
		Help:      "Kafka write latency.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 3, 7),
	}, []string{"service", "topic"})

	KafkaErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "events",
		Name:      "errors_total",
		Help:      "Failed Kafka writes.",
	}, []string{"service", "topic", "operation"})
)

// Бизнес-метрики
var (
	// AuthTokensIssued - токены, выданные через POST /jwt
	AuthTokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "auth",
		Name:      "tokens_issued_total",
		Help:      "Access tokens issued.",
	})

	// AuthGateRejections reason: missing_header, invalid_token, expired_token, email_mismatch
	AuthGateRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "auth",
		Name:      "gate_rejections_total",
		Help:      "Requests rejected by the authorization gate.",
	}, []string{"reason"})

	ServicesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "services_created_total",
		Help:      "Services created.",
	})

	// ReviewOperations operation: create, update, delete
	ReviewOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "review_operations_total",
		Help:      "Review write operations.",
	}, []string{"operation"})
)
