package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultJWTSecret         = "your_jwt_secret_minimum_32_chars_here_change_this"
	defaultAdminSeedPassword = "admin123"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Security
	JWTSecret  string
	SessionTTL time.Duration

	// Seed admin
	AdminSeedEmail    string
	AdminSeedPassword string
	AdminSeedName     string

	// Application
	AppEnv        string
	AppPort       string
	LogLevel      string
	UploadMaxSize int64

	// Rate Limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string

	// Staff notifications
	BotToken    string
	AdminChatID int64

	SendGridAPIKey    string
	NotifyEmailFrom   string
	NotifyEmailSender string
	NotifyEmailTo     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "edu"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "edu_admissions"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:  getEnv("JWT_SECRET_KEY", ""),
		SessionTTL: getEnvDuration("SESSION_TTL", 7*24*time.Hour),

		AdminSeedEmail:    getEnv("ADMIN_SEED_EMAIL", ""),
		AdminSeedPassword: getEnv("ADMIN_SEED_PASSWORD", defaultAdminSeedPassword),
		AdminSeedName:     getEnv("ADMIN_SEED_NAME", "Admin User"),

		AppEnv:        getEnv("APP_ENV", "development"),
		AppPort:       getEnv("APP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		UploadMaxSize: getEnvInt64("UPLOAD_MAX_SIZE", 5242880),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 5),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),

		BotToken: getEnv("BOT_TOKEN", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		NotifyEmailFrom:   getEnv("NOTIFY_EMAIL_FROM", ""),
		NotifyEmailSender: getEnv("NOTIFY_EMAIL_SENDER", "Admissions"),
		NotifyEmailTo:     getEnv("NOTIFY_EMAIL_TO", ""),
	}

	chatIDStr := getEnv("ADMIN_CHAT_ID", "")
	if chatIDStr != "" {
		id, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID: %w", err)
		}
		cfg.AdminChatID = id
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.RateLimitMax < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	if c.BotToken != "" && c.AdminChatID == 0 {
		return fmt.Errorf("ADMIN_CHAT_ID is required when BOT_TOKEN is set")
	}
	if c.SendGridAPIKey != "" && (c.NotifyEmailFrom == "" || c.NotifyEmailTo == "") {
		return fmt.Errorf("NOTIFY_EMAIL_FROM and NOTIFY_EMAIL_TO are required when SENDGRID_API_KEY is set")
	}
	return nil
}

func (c *Config) ValidateProductionSecurity() error {
	if c.AppEnv != "production" {
		return nil
	}

	if c.DBSSLMode != "require" {
		return fmt.Errorf("DB_SSLMODE must be 'require' in production")
	}
	if c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET_KEY must be changed from default in production")
	}
	if c.AdminSeedEmail != "" && c.AdminSeedPassword == defaultAdminSeedPassword {
		return fmt.Errorf("ADMIN_SEED_PASSWORD must be changed from default in production")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
