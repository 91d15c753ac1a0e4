package driving

import "github.com/custodia-labs/linesplit/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores a single setting given as text.
	// Returns domain.ErrUnknownSetting for unrecognised keys and
	// domain.ErrInvalidInput for values that fail validation.
	Set(key, value string) error

	// Keys returns every recognised settings key in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
