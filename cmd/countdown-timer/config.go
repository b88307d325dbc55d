package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with YAML parsing of strings like "3s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the countdown-timer settings.
type Config struct {
	// CountdownFrom is the countdown length.
	CountdownFrom Duration `yaml:"countdown_from"`

	// Interval is the tick spacing.
	Interval Duration `yaml:"interval"`

	// LogFile is the diagnostic log file path. Empty disables file logging.
	LogFile string `yaml:"log_file,omitempty"`

	// LogLevel is the console log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		CountdownFrom: Duration(3 * time.Second),
		Interval:      Duration(100 * time.Millisecond),
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML config file, filling unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.CountdownFrom <= 0 {
		return Config{}, fmt.Errorf("countdown_from must be positive, got %v", time.Duration(cfg.CountdownFrom))
	}
	if cfg.Interval <= 0 {
		return Config{}, fmt.Errorf("interval must be positive, got %v", time.Duration(cfg.Interval))
	}

	return cfg, nil
}
