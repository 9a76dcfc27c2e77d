package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Queue    QueueConfig
	Cache    CacheConfig
	API      APIConfig
	Worker   WorkerConfig
	Mail     MailConfig
	Log      LogConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// QueueConfig holds queue configuration (Redis)
type QueueConfig struct {
	RedisURL  string
	QueueName string
}

// CacheConfig controls the Redis cache of public list responses.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port           int
	AllowedOrigins []string
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	Concurrency   int
	MaxRetryCount int
	// RetrySchedule is a cron spec for re-queueing failed notifications.
	RetrySchedule string
}

// MailConfig holds SMTP settings for lead notifications. An empty Host
// selects the logging sender.
type MailConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	SalesTeam string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
	// File enables rotating file output in addition to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, err := getInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	apiPort, err := getInt("API_PORT", 8080)
	if err != nil {
		return nil, err
	}

	workerConcurrency, err := getInt("WORKER_CONCURRENCY", 5)
	if err != nil {
		return nil, err
	}

	maxRetryCount, err := getInt("MAX_RETRY_COUNT", 3)
	if err != nil {
		return nil, err
	}

	smtpPort, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	logMaxSize, err := getInt("LOG_MAX_SIZE_MB", 100)
	if err != nil {
		return nil, err
	}
	logMaxBackups, err := getInt("LOG_MAX_BACKUPS", 5)
	if err != nil {
		return nil, err
	}
	logMaxAge, err := getInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	smtpUser := getEnv("SMTP_USER", "")

	return &Config{
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "estate_portal"),
			Password:    getEnv("DB_PASSWORD", "estate_portal"),
			DBName:      getEnv("DB_NAME", "estate_portal"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getBool("DB_AUTO_MIGRATE", true),
		},
		Queue: QueueConfig{
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			QueueName: getEnv("QUEUE_NAME", "lead_notifications"),
		},
		Cache: CacheConfig{
			Enabled: getBool("CACHE_ENABLED", true),
			TTL:     cacheTTL,
		},
		API: APIConfig{
			Port:           apiPort,
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", "*"),
		},
		Worker: WorkerConfig{
			Concurrency:   workerConcurrency,
			MaxRetryCount: maxRetryCount,
			RetrySchedule: getEnv("RETRY_SCHEDULE", "@every 5m"),
		},
		Mail: MailConfig{
			Host:      getEnv("SMTP_HOST", ""),
			Port:      smtpPort,
			User:      smtpUser,
			Password:  getEnv("SMTP_PASS", ""),
			From:      getEnv("MAIL_FROM", smtpUser),
			SalesTeam: getEnv("SALES_TEAM_EMAIL", "sales@example.com"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAgeDays: logMaxAge,
		},
	}, nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func getList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
