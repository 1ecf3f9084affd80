// Package config resolves process-wide settings once at startup: model id,
// per-exchange timeout and the service credential. The credential always
// comes from the environment, never from a file or source.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"veridraft/gemini"
)

// DefaultAPIKeyEnv names the environment variable holding the credential.
const DefaultAPIKeyEnv = "GEMINI_API_KEY"

// Config is the resolved startup configuration. Immutable after Load; passed
// explicitly to the client rather than read from ambient globals.
type Config struct {
	Model      string `json:"model,omitempty"`
	TimeoutSec int    `json:"timeout_seconds,omitempty"`
	// APIKeyEnv overrides which environment variable supplies the key.
	APIKeyEnv string `json:"api_key_env,omitempty"`

	APIKey  string        `json:"-"`
	Timeout time.Duration `json:"-"`
}

// Load reads the optional JSON config file, loads a local .env when present,
// and applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// env + defaults only
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("VERIDRAFT_MODEL"); v != "" {
		cfg.Model = v
	}
	if cfg.Model == "" {
		cfg.Model = gemini.DefaultModel
	}

	if cfg.TimeoutSec > 0 {
		cfg.Timeout = time.Duration(cfg.TimeoutSec) * time.Second
	} else {
		cfg.Timeout = gemini.DefaultTimeout
	}

	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = DefaultAPIKeyEnv
	}
	cfg.APIKey = os.Getenv(keyEnv)

	return cfg, nil
}

// Validate reports missing startup configuration before any exchange runs.
func (c Config) Validate() error {
	if c.APIKey == "" {
		keyEnv := c.APIKeyEnv
		if keyEnv == "" {
			keyEnv = DefaultAPIKeyEnv
		}
		return &gemini.ConfigurationError{Reason: fmt.Sprintf("api key missing; set %s", keyEnv)}
	}
	if c.Model == "" {
		return &gemini.ConfigurationError{Reason: "model id is required"}
	}
	return nil
}
