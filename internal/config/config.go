package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/koinlyconv/internal/convert"
)

// Config represents an optional koinlyconv.yaml file.
type Config struct {
	Filter FilterConfig `yaml:"filter"`
	Log    LogConfig    `yaml:"log"`
}

// FilterConfig controls which rows are converted.
type FilterConfig struct {
	Stablecoins    []string `yaml:"stablecoins"`
	TransferMarker string   `yaml:"transfer_marker"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Load reads a config file from disk. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	f := convert.DefaultFilter()
	return &Config{
		Filter: FilterConfig{
			Stablecoins:    f.Stablecoins,
			TransferMarker: f.TransferMarker,
		},
	}
}

// Validate checks the config for values that would make every row drop.
func (c *Config) Validate() error {
	if len(c.Filter.Stablecoins) == 0 {
		return errors.New("filter.stablecoins must not be empty")
	}
	for i, coin := range c.Filter.Stablecoins {
		if coin == "" {
			return fmt.Errorf("filter.stablecoins[%d] is empty", i)
		}
	}
	return nil
}

// ConvertFilter returns the filter described by the config.
func (c *Config) ConvertFilter() convert.Filter {
	return convert.Filter{
		Stablecoins:    c.Filter.Stablecoins,
		TransferMarker: c.Filter.TransferMarker,
	}
}
