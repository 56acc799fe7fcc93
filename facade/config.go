// File: facade/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable run configuration for the facade, loadable from YAML.

package facade

import (
	"os"

	"github.com/brickingsoft/errors"
	"github.com/ghodss/yaml"
)

var ErrConfig = errors.Define("streamio: invalid configuration")

// Config holds parameters immutable per run.
type Config struct {
	Backlog        int    `json:"backlog"`        // Default listen backlog for streams
	ReadBufferSize int    `json:"readBufferSize"` // Capacity of pooled read buffers
	LogLevel       string `json:"logLevel"`       // "none", "debug" or "production"
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Backlog:        128,       // matches stream.DefaultBacklog
		ReadBufferSize: 64 * 1024, // 64 KiB read buffers
		LogLevel:       "none",    // logging off unless asked for
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("read config failed", errors.WithWrap(err))
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("parse config failed", errors.WithWrap(err))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backlog < 0 {
		return errors.New("backlog must not be negative", errors.WithWrap(ErrConfig))
	}
	if c.ReadBufferSize < 0 {
		return errors.New("readBufferSize must not be negative", errors.WithWrap(ErrConfig))
	}
	switch c.LogLevel {
	case "", "none", "debug", "production":
		return nil
	}
	return errors.New("unknown logLevel "+c.LogLevel, errors.WithWrap(ErrConfig))
}
