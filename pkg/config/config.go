package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultJWTSecret is the placeholder secret services refuse to start with.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Server
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"debug"`

	// Database
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"affiliate_blog"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"affiliate-blog.db"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" default:"your-secret-key-change-in-production"`

	// AWS S3 / MinIO
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
	AWSEndpoint        string `envconfig:"AWS_ENDPOINT" default:""`
	S3UseSSL           string `envconfig:"S3_USE_SSL" default:"true"`
	S3BucketName       string `envconfig:"S3_BUCKET_NAME" default:"affiliate-blog-media"`

	// RabbitMQ
	RabbitMQHost     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	RabbitMQPort     string `envconfig:"RABBITMQ_PORT" default:"5672"`
	RabbitMQUser     string `envconfig:"RABBITMQ_USER" default:"guest"`
	RabbitMQPassword string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`

	// Text generation (OpenAI compatible)
	OpenAIAPIKey      string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL     string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIModel       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAITemperature float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
	OpenAITimeout     time.Duration `envconfig:"OPENAI_TIMEOUT" default:"90s"`
	OpenAIMaxAttempts int           `envconfig:"OPENAI_MAX_ATTEMPTS" default:"3"`

	// Generation pipeline
	GenerationStepTimeout  time.Duration `envconfig:"GENERATION_STEP_TIMEOUT" default:"2m"`
	GenerationProductLimit int           `envconfig:"GENERATION_PRODUCT_LIMIT" default:"3"`
	DefaultHeroImageURL    string        `envconfig:"DEFAULT_HERO_IMAGE_URL" default:"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=1024&h=1024&fit=crop"`

	// Background jobs
	QueueMetricsSchedule string `envconfig:"QUEUE_METRICS_SCHEDULE" default:"@every 1m"`

	// Public read cache
	PublicCacheTTL time.Duration `envconfig:"PUBLIC_CACHE_TTL" default:"5m"`

	// Seed
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	// BootstrapAdmin makes the auth service ensure the admin account on start.
	BootstrapAdmin bool `envconfig:"BOOTSTRAP_ADMIN" default:"false"`

	// Services URLs
	AuthServiceURL     string `envconfig:"AUTH_SERVICE_URL" default:"http://localhost:8001"`
	ContentServiceURL  string `envconfig:"CONTENT_SERVICE_URL" default:"http://localhost:8002"`
	NotifierServiceURL string `envconfig:"NOTIFIER_SERVICE_URL" default:"http://localhost:8003"`
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	return &cfg, nil
}

// PostgresDSN returns the key/value DSN understood by both pgx and lib/pq.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

// HasInsecureJWTSecret reports whether the JWT secret is unset or still the placeholder.
func (c *Config) HasInsecureJWTSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}
