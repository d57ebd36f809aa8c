package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/substring"
)

const (
	PolicyIgnore = "ignore"
	PolicyPanic  = "panic"
	PolicyAbort  = "abort"
)

var (
	ErrPolicy    = errors.New("config: unknown policy")
	ErrSeparator = errors.New("config: separator must be a single byte")
)

// Config drives the substr tool. Flags override file values.
type Config struct {
	Policy    string `yaml:"policy"`
	Pos       int    `yaml:"pos"`
	Len       int    `yaml:"len"`
	Separator string `yaml:"separator"`
	Frame     bool   `yaml:"frame"`
	Compress  bool   `yaml:"compress"`
	LogLevel  string `yaml:"log_level"`
}

// DefaultConfig prints the whole input under the panic policy.
func DefaultConfig() *Config {
	return &Config{
		Policy:   PolicyPanic,
		Pos:      0,
		Len:      substring.NPos,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Policy {
	case PolicyIgnore, PolicyPanic, PolicyAbort:
	default:
		return fmt.Errorf("%w: %q", ErrPolicy, c.Policy)
	}
	if len(c.Separator) > 1 {
		return ErrSeparator
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured log level, info when unset or invalid.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
