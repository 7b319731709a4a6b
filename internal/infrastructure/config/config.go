package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the backend root, including any path prefix.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`
	// SessionFile overrides where the durable session lives. Empty means the
	// default location under the user config directory.
	SessionFile string `env:"SESSION_FILE"`
	// HTTPTimeout of 0 keeps the source's behavior: requests wait forever.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveSessionFile returns the configured session path, or the per-user
// default when unset.
func (c *Config) ResolveSessionFile() (string, error) {
	if c.SessionFile != "" {
		return c.SessionFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve session file: %w", err)
	}
	return filepath.Join(dir, "inventory-client", "session.json"), nil
}
