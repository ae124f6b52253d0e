package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyShellPath      = "shell.path"
	keyShellTimeout   = "shell.timeout"
	keyShellAllow     = "shell.allow"
	keyHistoryEnabled = "history.enabled"
	keyLimitsRate     = "limits.rate"
	keyLimitsBurst    = "limits.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid keys
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Shell: domain.ShellSettings{
			Path:    s.getString(keyShellPath, defaults.Shell.Path),
			Timeout: s.getSeconds(keyShellTimeout, defaults.Shell.Timeout),
			Allow:   s.configStore.GetStringSlice(keyShellAllow),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
		Limits: domain.LimitSettings{
			Rate:  s.getRate(defaults.Limits.Rate),
			Burst: s.getInt(keyLimitsBurst, defaults.Limits.Burst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings.Limits.Rate < 0 || settings.Limits.Burst < 0 {
		return fmt.Errorf("%w: limits must not be negative", domain.ErrInvalidInput)
	}
	if settings.Shell.Timeout < 0 {
		return fmt.Errorf("%w: shell timeout must not be negative", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyShellPath, settings.Shell.Path); err != nil {
		return fmt.Errorf("save shell path: %w", err)
	}
	if err := s.configStore.Set(keyShellTimeout, int64(settings.Shell.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save shell timeout: %w", err)
	}
	if err := s.configStore.Set(keyShellAllow, settings.Shell.Allow); err != nil {
		return fmt.Errorf("save shell allow: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyLimitsRate, settings.Limits.Rate); err != nil {
		return fmt.Errorf("save limits rate: %w", err)
	}
	if err := s.configStore.Set(keyLimitsBurst, settings.Limits.Burst); err != nil {
		return fmt.Errorf("save limits burst: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Reload re-reads settings from the config store.
func (s *SettingsService) Reload() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	secs := s.configStore.GetInt(key)
	if secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}

func (s *SettingsService) getRate(defaultVal float64) float64 {
	val := s.configStore.GetFloat(keyLimitsRate)
	if val < 0 {
		return defaultVal
	}
	return val
}
