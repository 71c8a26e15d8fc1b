package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/database"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/logging"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/storage"
)

// cliConfig holds the environment defaults of the global flags.
type cliConfig struct {
	Server      string        `env:"MATRIXCTL_SERVER" envDefault:"https://о-тебе.рф"`
	Timeout     time.Duration `env:"MATRIXCTL_TIMEOUT" envDefault:"10s"`
	RedisURL    string        `env:"MATRIXCTL_REDIS_URL"`
	StatePath   string        `env:"MATRIXCTL_STATE"`
	HistoryMax  int           `env:"MATRIXCTL_HISTORY_MAX" envDefault:"200"`
	Overrides   string        `env:"MATRIXCTL_ARCANA_OVERRIDES"`
	Verbose     bool          `env:"MATRIXCTL_VERBOSE"`
	Email       string        `env:"MATRIXCTL_EMAIL"`
	ShareOrigin string        `env:"MATRIXCTL_SHARE_ORIGIN"`
}

func loadConfig() (cliConfig, error) {
	cfg := cliConfig{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath()
	}
	return cfg, nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "matrixctl", "state.db")
}

// app is everything a command needs. Tests build it directly.
type app struct {
	out     io.Writer
	base    *arcana.Base
	gate    *access.Gate
	history *history.Store
	session *history.Session
	now     func() time.Time
	close   func() error
}

type opener func(ctx context.Context, cfg cliConfig, out io.Writer) (*app, error)

func openApp(ctx context.Context, cfg cliConfig, out io.Writer) (*app, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Verbose {
		log = slog.New(logging.NewJSONHandler(os.Stderr))
	}

	base := arcana.Default()
	if cfg.Overrides != "" {
		var err error
		if base, err = arcana.LoadOverrides(cfg.Overrides); err != nil {
			return nil, err
		}
	}

	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := history.NewStore(kv, cfg.HistoryMax)
	return &app{
		out:     out,
		base:    base,
		gate:    access.NewGate(access.NewClient(cfg.Server, cfg.Timeout), log),
		history: store,
		session: history.NewSession(kv, store),
		now:     time.Now,
		close:   closeKV,
	}, nil
}

// openKV prefers Redis when a URL is configured, otherwise a local SQLite
// file.
func openKV(ctx context.Context, cfg cliConfig) (storage.KV, func() error, error) {
	if cfg.RedisURL != "" {
		r, err := storage.NewRedis(ctx, storage.RedisOptions{URL: cfg.RedisURL, KeyPrefix: "matrixctl:"})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.StatePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := database.Open(sqlite.Open(cfg.StatePath), logger.Silent)
	if err != nil {
		return nil, nil, fmt.Errorf("open state: %w", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, nil, fmt.Errorf("migrate state: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return storage.NewGormKV(db), sqlDB.Close, nil
}

var errNotLoggedIn = errors.New("not logged in: pass --email or run matrixctl login")

// email returns the flag value or the session email.
func (a *app) email(ctx context.Context, flag string) (string, error) {
	if e := access.NormalizeEmail(flag); e != "" {
		return e, nil
	}
	return a.session.UserEmail(ctx)
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}
