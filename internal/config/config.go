package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration.
type Config struct {
	DBPath      string // SQLite database location
	SessionPath string // persisted login token location
	LogLevel    string // debug|info|warn|error
	LogFormat   string // text|json
}

// Default returns a Config pointing at ~/.lancer with info-level text logging.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath:      filepath.Join(home, ".lancer", "lancer.db"),
		SessionPath: filepath.Join(home, ".lancer", "session"),
		LogLevel:    "info",
		LogFormat:   "text",
	}, nil
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("LANCER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LANCER_SESSION_FILE"); v != "" {
		cfg.SessionPath = v
	}
	if v := os.Getenv("LANCER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LANCER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}
