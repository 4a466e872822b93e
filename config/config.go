package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Stripe
	Auth
	Storage
	Cache
	Scheduler
	Tracing
}

type APP struct {
	PORT           string   `env:"APP_PORT" envDefault:"8080"`
	ENV            string   `env:"GO_ENV" envDefault:"production"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	// requests per second allowed on public write endpoints (register, contact)
	PublicRateLimit float64 `env:"PUBLIC_RATE_LIMIT" envDefault:"1"`
	PublicBurst     int     `env:"PUBLIC_RATE_BURST" envDefault:"5"`
}

func (a APP) IsLocal() bool {
	return strings.EqualFold(a.ENV, "local")
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER" envDefault:"postgres"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME" envDefault:"pulse"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GROUP_ID" envDefault:"pulse-service"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"participations.pending,participations.paid,participations.failed,events.reminders,pulse.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"events.reminders,participations.pending,participations.paid,participations.failed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

type Stripe struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

type Auth struct {
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
}

type Storage struct {
	PublicDir      string `env:"PUBLIC_DIR" envDefault:"./public"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

type Cache struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	LocalSize     int           `env:"CACHE_LOCAL_SIZE" envDefault:"256"`
}

type Scheduler struct {
	Enabled  bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"60s"`
}

type Tracing struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"pulse"`
}
