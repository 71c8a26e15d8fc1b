package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 200, cfg.HistoryMaxRecords)
	assert.Equal(t, 3, cfg.MaxDevices)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "a@example.com,b@example.com")
	t.Setenv("HISTORY_MAX_RECORDS", "0")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AdminEmails)
	assert.Equal(t, 0, cfg.HistoryMaxRecords)
	assert.True(t, cfg.TelegramEnabled())
	assert.Contains(t, cfg.DSN(), "password=secret")
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")
}

func TestLoadError(t *testing.T) {
	t.Setenv("MAX_DEVICES", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
