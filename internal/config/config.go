// Package config loads the server configuration from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Inputs  InputsConfig  `yaml:"inputs"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	SolveTimeout      time.Duration `yaml:"solve_timeout"`
	MaxInputBytes     int64         `yaml:"max_input_bytes"`
}

type InputsConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			SolveTimeout:      30 * time.Second,
			MaxInputBytes:     1 << 20,
		},
		Inputs: InputsConfig{Dir: "./input"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file yields the defaults; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies ADVENT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ADVENT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ADVENT_INPUT_DIR"); v != "" {
		c.Inputs.Dir = v
	}
	if v := os.Getenv("ADVENT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ADVENT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("ADVENT_SOLVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ADVENT_SOLVE_TIMEOUT: %w", err)
		}
		c.Server.SolveTimeout = d
	}
	if v := os.Getenv("ADVENT_MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ADVENT_MAX_INPUT_BYTES: %w", err)
		}
		c.Server.MaxInputBytes = n
	}
	return nil
}

var ValidLogFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty")
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("server.read_header_timeout must be positive, got %s", c.Server.ReadHeaderTimeout)
	}
	if c.Server.SolveTimeout < 0 {
		return fmt.Errorf("server.solve_timeout must not be negative, got %s", c.Server.SolveTimeout)
	}
	if c.Server.MaxInputBytes <= 0 {
		return fmt.Errorf("server.max_input_bytes must be positive, got %d", c.Server.MaxInputBytes)
	}
	if c.Inputs.Dir == "" {
		return fmt.Errorf("inputs.dir is empty")
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}
