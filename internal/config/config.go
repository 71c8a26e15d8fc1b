package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Database
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" envDefault:"destiny_matrix"`
	DBSSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`

	// JWT
	JWTSecret       string        `env:"JWT_SECRET"`
	JWTAccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY" envDefault:"168h"`
	JWTAdminExpiry  time.Duration `env:"JWT_ADMIN_EXPIRY" envDefault:"12h"`

	// Admin
	AdminEmails       []string `env:"ADMIN_EMAILS" envSeparator:","`
	AdminPasswordHash string   `env:"ADMIN_PASSWORD_HASH"`
	AdminToken        string   `env:"ADMIN_TOKEN"`

	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	SiteOrigin  string `env:"SITE_ORIGIN" envDefault:"https://о-тебе.рф"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	SentryDSN   string `env:"SENTRY_DSN"`

	// Redis (optional; history falls back to the database)
	RedisURL          string        `env:"REDIS_URL"`
	RedisPoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisDialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	RedisReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	RedisWriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	RedisKeyPrefix    string        `env:"REDIS_KEY_PREFIX" envDefault:"destiny:"`

	// History
	HistoryMaxRecords int `env:"HISTORY_MAX_RECORDS" envDefault:"200"`

	// Telegram moderation
	TelegramBotToken      string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID        string        `env:"TELEGRAM_CHAT_ID"`
	TelegramWebhookSecret string        `env:"TELEGRAM_WEBHOOK_SECRET"`
	TelegramAPIURL        string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	TelegramTimeout       time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`

	// Payment screenshots
	GCSBucket         string `env:"GCS_BUCKET"`
	ScreenshotDir     string `env:"SCREENSHOT_DIR" envDefault:"uploads"`
	ScreenshotBaseURL string `env:"SCREENSHOT_BASE_URL" envDefault:"/uploads"`

	// Devices
	MaxDevices int `env:"MAX_DEVICES" envDefault:"3"`

	// Logging
	LogRetentionDays int `env:"LOG_RETENTION_DAYS" envDefault:"30"`

	// Knowledge base
	ArcanaOverridesPath string `env:"ARCANA_OVERRIDES_PATH"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// TelegramEnabled reports whether moderation messages can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}
