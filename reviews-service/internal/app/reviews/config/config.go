package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	JWT     JWTConfig
	Kafka   KafkaConfig
	Redis   RedisConfig
	Log     LogConfig
	// Драйвер хранилища: mongo (по умолчанию) или memory для локального запуска без БД
	StoreDriver string `validate:"oneof=mongo memory"`
}

type ServerConfig struct {
	Host              string
	Port              string   `validate:"required,numeric"`
	CORSAllowOrigins  []string `validate:"min=1"`
	HomeServicesLimit int64    `validate:"min=1"` // Размер выборки GET /home-services
}

type MongoDBConfig struct {
	URI      string // Строка подключения; если не задана, собирается из User/Password/Host
	User     string
	Password string
	Host     string
	Database string `validate:"required"`
	Timeout  time.Duration
}

type JWTConfig struct {
	Secret string        `validate:"required"` // Секрет для подписи токенов (ACCESS_TOKEN_SECRET)
	TTL    time.Duration `validate:"gt=0"`     // Время жизни токена, по умолчанию 1 час
}

type KafkaConfig struct {
	Brokers []string // Пусто - события не отправляются
	Topic   string
}

type RedisConfig struct {
	Addr     string // Пусто - кеш home-services отключен
	Password string
	DB       int
	CacheTTL time.Duration
}

type LogConfig struct {
	Level        string
	LogstashAddr string
}

// Load загружает конфигурацию из переменных окружения (и .env, если он есть)
func Load() (*Config, error) {
	_ = godotenv.Load()

	tokenTTL, err := time.ParseDuration(getEnv("ACCESS_TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("REDIS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_CACHE_TTL: %w", err)
	}

	mongoTimeout, err := time.ParseDuration(getEnv("MONGODB_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGODB_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:              getEnv("SERVER_HOST", "0.0.0.0"),
			Port:              getEnv("PORT", "5000"),
			CORSAllowOrigins:  getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
			HomeServicesLimit: int64(getEnvInt("HOME_SERVICES_LIMIT", 3)),
		},
		MongoDB: MongoDBConfig{
			URI:      os.Getenv("MONGODB_URI"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			Host:     getEnv("MONGODB_HOST", "cluster0.mongodb.net"),
			Database: getEnv("MONGODB_DATABASE", "serviceReview"),
			Timeout:  mongoTimeout,
		},
		JWT: JWTConfig{
			Secret: os.Getenv("ACCESS_TOKEN_SECRET"),
			TTL:    tokenTTL,
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC", "review_events"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: cacheTTL,
		},
		Log: LogConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			LogstashAddr: os.Getenv("LOGSTASH_ADDR"),
		},
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverMongo),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.StoreDriver == StoreDriverMongo && cfg.MongoDB.URI == "" && (cfg.MongoDB.User == "" || cfg.MongoDB.Password == "") {
		return nil, fmt.Errorf("invalid configuration: MONGODB_URI or DB_USER and DB_PASS are required")
	}

	return cfg, nil
}

// Address возвращает адрес сервера в формате host:port
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// ConnectionURI возвращает строку подключения к MongoDB.
// Учетные данные экранируются, поэтому пароль может содержать @ и :
func (c *MongoDBConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// CacheEnabled сообщает, настроен ли Redis для кеша home-services
func (c *RedisConfig) CacheEnabled() bool {
	return c.Addr != ""
}

// EventsEnabled сообщает, настроены ли брокеры Kafka
func (c *KafkaConfig) EventsEnabled() bool {
	return len(c.Brokers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList разбирает список через запятую, пустые элементы отбрасываются
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
