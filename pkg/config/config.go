package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Server
	ServerPort string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Site
	SiteName        string
	SiteDescription string
	AdminEmails     []string
	AllowedOrigins  []string

	// Logging
	LogLevel string
	LogFile  string

	// AWS S3
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	YouTube YouTubeConfig
	Sweep   SweepConfig
}

// YouTubeConfig holds the video metadata API settings. An empty APIKey
// disables metadata lookups.
type YouTubeConfig struct {
	APIKey    string        `envconfig:"YOUTUBE_API_KEY"`
	BaseURL   string        `envconfig:"YOUTUBE_API_BASE_URL" default:"https://www.googleapis.com/youtube/v3"`
	RateLimit float64       `envconfig:"YOUTUBE_RATE_LIMIT" default:"5"`
	Timeout   time.Duration `envconfig:"YOUTUBE_TIMEOUT" default:"10s"`
	CacheTTL  time.Duration `envconfig:"YOUTUBE_CACHE_TTL" default:"24h"`
}

// SweepConfig controls the member expiration sweep run by the admin service.
type SweepConfig struct {
	Enabled      bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Interval     time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
	InitialDelay time.Duration `envconfig:"SWEEP_INITIAL_DELAY" default:"5s"`
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "pilates_club"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:    getDuration("JWT_TTL", 7*24*time.Hour),

		SiteName:        getEnv("SITE_NAME", "Pilates Club"),
		SiteDescription: getEnv("SITE_DESCRIPTION", "Members-only pilates video classes"),
		AdminEmails:     getList("ADMIN_EMAILS", []string{"admin@example.com"}),
		AllowedOrigins:  getList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),
	}

	if err := envconfig.Process("", &config.YouTube); err != nil {
		return nil, fmt.Errorf("failed to load youtube config: %w", err)
	}

	if err := envconfig.Process("", &config.Sweep); err != nil {
		return nil, fmt.Errorf("failed to load sweep config: %w", err)
	}

	return config, nil
}

// Validate checks the settings every service depends on. JWT_SECRET is
// required because all services issue or verify session tokens.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in environment variables")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "mysql" {
		return fmt.Errorf("DB_DRIVER must be postgres or mysql")
	}
	if c.YouTube.RateLimit <= 0 {
		return fmt.Errorf("YOUTUBE_RATE_LIMIT must be positive")
	}
	if c.Sweep.Enabled && c.Sweep.Interval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
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
	return items
}
