package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from, in order of precedence: environment
// variables, the YAML file and env-default tags. CONFIG_PATH names the file;
// a missing CONFIG_PATH falls back to ./config.yaml when it exists and to the
// environment alone otherwise. An explicit path that cannot be read is an error.
func Load() (*Config, error) {
	cfg, err := read(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("config: read env: %w", err)
			}
			return &cfg, nil
		}
		path = defaultConfigPath
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}

// normalize trims and lower-cases values that are matched case-insensitively.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Mail.FrontendURL = strings.TrimRight(strings.TrimSpace(c.Mail.FrontendURL), "/")
	c.Mail.SMTPHost = strings.TrimSpace(c.Mail.SMTPHost)
}
