package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the YAML file read when CONFIG_PATH is unset.
const DefaultPath = "config.yaml"

// Load builds the configuration from env-default tags, an optional YAML file
// and the environment, each overriding the previous one, then validates it.
// A file named by CONFIG_PATH must exist; the default file may be absent.
func Load() (*Config, error) {
	path, required := resolvePath()

	cfg, err := read(path, required)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func resolvePath() (path string, required bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return DefaultPath, false
}

func read(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: open %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
