package domain

// Config represents the application configuration.
type Config struct {
	Store   StoreConfig   // [store] settings
	Session SessionConfig // [session] settings
	Log     LogConfig     // [log] settings
}

// StoreConfig holds mock backend settings from the [store] section.
type StoreConfig struct {
	Seed         string // Path to a YAML seed file (empty = built-in fixtures)
	LatencyMinMS int    // Lower bound of simulated latency
	LatencyMaxMS int    // Upper bound of simulated latency
}

// SessionConfig holds durable session storage settings from [session].
type SessionConfig struct {
	Storage string // Backend: "file" or "sqlite"
	Path    string // Storage location (empty = default data dir)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// Storage backends for session persistence.
const (
	SessionStorageFile   = "file"
	SessionStorageSQLite = "sqlite"
)

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			LatencyMinMS: 200,
			LatencyMaxMS: 500,
		},
		Session: SessionConfig{
			Storage: SessionStorageFile,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
