// Command dsctl invokes commands registered by data-source modules from the
// command line or over MCP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/dsctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/dsctl/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/dsctl/internal/adapters/driving/cli"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
	"github.com/custodia-labs/dsctl/internal/core/services"
	"github.com/custodia-labs/dsctl/internal/datasource/debug"
	"github.com/custodia-labs/dsctl/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, bootstrap)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters and services for one run.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	limiter := services.NewRateLimiter(settings.Limits)

	var (
		history        driven.HistoryStore
		historyService driving.HistoryService
		closeFn        func() error
	)
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(filepath.Dir(configStore.Path()), "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("history: %s", store.Path())
		history = store.HistoryStore()
		historyService = services.NewHistoryService(history)
		closeFn = store.Close
	}

	sess, err := newSession(settings.Shell)
	if err != nil {
		return nil, err
	}

	registry := services.NewCommandRegistry()
	if err := debug.Register(registry, sess); err != nil {
		return nil, fmt.Errorf("registering data sources: %w", err)
	}
	logger.Debug("%d command(s) registered", registry.Len())

	return &cli.Services{
		Commands: services.NewCommandService(registry, history, limiter),
		History:  historyService,
		Settings: settingsService,
		WatchConfig: func(ctx context.Context) error {
			return configStore.Watch(ctx, func() {
				updated, err := settingsService.Get()
				if err != nil {
					logger.Warn("reading reloaded settings: %v", err)
					return
				}
				limiter.Update(updated.Limits)
				logger.Info("rate limit now %v/s (burst %d)", updated.Limits.Rate, updated.Limits.Burst)
			})
		},
		Close: closeFn,
	}, nil
}

// newSession captures the process working directory and environment.
func newSession(shell domain.ShellSettings) (*domain.Session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return &domain.Session{
		ID:        uuid.New().String(),
		WorkDir:   wd,
		Env:       env,
		Shell:     shell,
		CreatedAt: time.Now(),
	}, nil
}
