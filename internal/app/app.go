// Package app wires configuration, logging and the history store into the
// shared core used by cmd/tvm-server and cmd/tvm-calc.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quantfold/tvm/internal/common"
	"github.com/quantfold/tvm/internal/storage"
)

// App holds the initialized configuration, logger and history store.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	History     storage.HistoryStore
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging and storage.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, TVM_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("TVM_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "tvm.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/tvm.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	history := newHistoryStore(config, logger)

	a := &App{
		Config:      config,
		Logger:      logger,
		History:     history,
		StartupTime: startupStart,
	}

	logger.Info().
		Str("backend", config.History.Backend).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// newHistoryStore builds the configured history backend. A redis backend that
// cannot be reached at startup falls back to memory with a warning, since
// history is best-effort.
func newHistoryStore(config *common.Config, logger *common.Logger) storage.HistoryStore {
	if config.History.Backend != "redis" {
		return storage.NewMemoryHistory(config.History.MaxEntries)
	}

	rh := storage.NewRedisHistory(config.History.RedisAddr, config.History.MaxEntries, config.History.GetTTL())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rh.Ping(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("addr", config.History.RedisAddr).
			Msg("Redis unreachable, using in-memory history")
		rh.Close()
		return storage.NewMemoryHistory(config.History.MaxEntries)
	}

	logger.Info().Str("addr", config.History.RedisAddr).Msg("Using redis history backend")
	return rh
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.History != nil {
		a.History.Close()
		a.History = nil
	}
}
