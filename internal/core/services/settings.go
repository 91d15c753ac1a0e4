package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputDir   = "split.output_dir"
	keyEncoding    = "split.encoding"
	keyLineEnding  = "split.line_ending"
	keyStrictParts = "split.strict_parts"
	keyRollback    = "split.rollback"
	keyHistoryOn   = "history.enabled"
	keyHistoryMax  = "history.limit"
)

// settingsKeys lists every key in display order.
var settingsKeys = []string{
	keyOutputDir,
	keyEncoding,
	keyLineEnding,
	keyStrictParts,
	keyRollback,
	keyHistoryOn,
	keyHistoryMax,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Split: domain.SplitSettings{
			OutputDir:   s.configStore.GetString(keyOutputDir), // No default - empty means next to the source
			Encoding:    s.getString(keyEncoding, defaults.Split.Encoding),
			LineEnding:  s.getLineEnding(defaults.Split.LineEnding),
			StrictParts: s.getBool(keyStrictParts, defaults.Split.StrictParts),
			Rollback:    s.getBool(keyRollback, defaults.Split.Rollback),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryOn, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryMax, defaults.History.Limit),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	// Save split settings
	if err := s.configStore.Set(keyOutputDir, settings.Split.OutputDir); err != nil {
		return fmt.Errorf("save output_dir: %w", err)
	}
	if err := s.configStore.Set(keyEncoding, settings.Split.Encoding); err != nil {
		return fmt.Errorf("save encoding: %w", err)
	}
	if err := s.configStore.Set(keyLineEnding, settings.Split.LineEnding.String()); err != nil {
		return fmt.Errorf("save line_ending: %w", err)
	}
	if err := s.configStore.Set(keyStrictParts, settings.Split.StrictParts); err != nil {
		return fmt.Errorf("save strict_parts: %w", err)
	}
	if err := s.configStore.Set(keyRollback, settings.Split.Rollback); err != nil {
		return fmt.Errorf("save rollback: %w", err)
	}

	// Save history settings
	if err := s.configStore.Set(keyHistoryOn, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryMax, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}

	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case keyOutputDir:
		return s.configStore.Set(key, value)

	case keyEncoding:
		if value == "" {
			return fmt.Errorf("%w: encoding must not be empty", domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, strings.ToLower(value))

	case keyLineEnding:
		ending := domain.LineEnding(strings.ToLower(value))
		if !ending.IsValid() {
			return fmt.Errorf("%w: line ending %q (want native, lf or crlf)", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, ending.String())

	case keyStrictParts, keyRollback, keyHistoryOn:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, b)

	case keyHistoryMax:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s expects a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, n)

	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
}

// Keys returns every recognised settings key.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

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

func (s *SettingsService) getLineEnding(defaultVal domain.LineEnding) domain.LineEnding {
	val := s.configStore.GetString(keyLineEnding)
	if val == "" {
		return defaultVal
	}
	ending := domain.LineEnding(val)
	if !ending.IsValid() {
		return defaultVal
	}
	return ending
}
