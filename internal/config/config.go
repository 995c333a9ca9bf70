package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Telegram  TelegramConfig
	Promotion PromotionConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type TelegramConfig struct {
	BotToken    string
	AdminChatID int64
	WebAppURL   string
}

// PromotionConfig holds the cost/duration table for the two boost axes.
// The price table differed between product iterations, so it is taken from
// the environment rather than hardcoded.
type PromotionConfig struct {
	CatalogCost      int64
	CatalogDuration  time.Duration
	CategoryCost     int64
	CategoryDuration time.Duration
}

func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	adminChatID, _ := strconv.ParseInt(getEnv("TELEGRAM_ADMIN_CHAT_ID", "0"), 10, 64)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "nebula"),
			Password: getEnv("DB_PASSWORD", "nebula"),
			Name:     getEnv("DB_NAME", "nebula"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			AdminChatID: adminChatID,
			WebAppURL:   getEnv("TELEGRAM_WEBAPP_URL", ""),
		},
		Promotion: PromotionConfig{
			CatalogCost:      getEnvInt64("PROMO_CATALOG_COST", 50),
			CatalogDuration:  time.Duration(getEnvInt64("PROMO_CATALOG_HOURS", 72)) * time.Hour,
			CategoryCost:     getEnvInt64("PROMO_CATEGORY_COST", 25),
			CategoryDuration: time.Duration(getEnvInt64("PROMO_CATEGORY_HOURS", 72)) * time.Hour,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

// Business limits and worker intervals
const (
	MaxDonationStars = 10

	PresenceCheckInterval = 1 * time.Minute
	OnlineTimeout         = 5 * time.Minute
)
