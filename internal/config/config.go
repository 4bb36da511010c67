package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Addr         string `yaml:"addr"`
	DatabasePath string `yaml:"database_path"`
	SessionTTL   string `yaml:"session_ttl"`
	SecureCookie bool   `yaml:"secure_cookie"`
	Debug        bool   `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DatabasePath: "./data/yatube.db",
		SessionTTL:   "24h",
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv("PORT"); p != "" {
		c.Addr = ":" + p
	}
	if v := os.Getenv("YATUBE_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("YATUBE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if c.DatabasePath == "" {
		return errors.New("config: database_path is empty")
	}
	ttl, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return fmt.Errorf("config: session_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// SessionMaxAge returns the parsed session lifetime. Call after Validate.
func (c *Config) SessionMaxAge() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}
