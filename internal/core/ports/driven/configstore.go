package driven

// ConfigStore holds flat, dot-separated configuration keys such as
// "split.encoding". Implementations persist them (TOML on disk, or memory
// in tests) and convert stored values to the requested type.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns "" when key is unset or not a string.
	GetString(key string) string

	// GetInt returns 0 when key is unset or not numeric.
	GetInt(key string) int

	// GetBool returns false when key is unset or not a boolean.
	GetBool(key string) bool

	// Set stores value under key and persists it immediately.
	Set(key string, value any) error

	// Save writes the current values to storage.
	Save() error

	// Load replaces the current values with those in storage.
	Load() error

	// Path returns where the configuration lives.
	Path() string
}
