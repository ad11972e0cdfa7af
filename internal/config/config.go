package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file read from the project root.
const FileName = "filepacker.yaml"

// Config represents the generator settings parsed from filepacker.yaml.
type Config struct {
	// InlinePayloads stores binary files as base64 literals inside FileHandler.cs
	// instead of adding them to the PluginFiles resource bundle.
	InlinePayloads bool `yaml:"inline_payloads"`
	// TextExtensions lists the extensions (with or without the leading dot)
	// eligible for placeholder substitution, separated by comma, semicolon or space.
	TextExtensions string `yaml:"text_extensions"`
	// DefaultNamespace is used when neither FileHandler.cs nor FileHandlerCustom.cs declares one.
	DefaultNamespace string `yaml:"default_namespace"`
	// NotifyOnSuccess shows a message once FileHandler.cs was generated.
	NotifyOnSuccess *bool `yaml:"notify_on_success"`
	// Retry bounds the wait for the project system to pick up the resource bundle.
	Retry RetryConfig `yaml:"retry"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// RetryConfig configures the bounded poll for the resource bundle project item.
type RetryConfig struct {
	// Attempts is the number of lookups before giving up.
	Attempts int `yaml:"attempts"`
	// Delay is the pause between lookups (e.g., "1s").
	Delay string `yaml:"delay"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path.
	Path string `yaml:"path"`
}

const (
	DefaultTextExtensions = "css,js,txt,json"
	DefaultNamespace      = "uwap.WebFramework.Plugins"
	DefaultRetryAttempts  = 10
	DefaultRetryDelay     = "1s"
)

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads path and returns the validated configuration.
// A missing file is not an error; the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if strings.TrimSpace(config.TextExtensions) == "" {
		config.TextExtensions = DefaultTextExtensions
	}
	if config.DefaultNamespace == "" {
		config.DefaultNamespace = DefaultNamespace
	}
	if config.NotifyOnSuccess == nil {
		t := true
		config.NotifyOnSuccess = &t
	}
	if config.Retry.Attempts == 0 {
		config.Retry.Attempts = DefaultRetryAttempts
	}
	if config.Retry.Delay == "" {
		config.Retry.Delay = DefaultRetryDelay
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for values the generator cannot work with.
func Validate(config *Config) error {
	if len(config.TextExtensionsClean()) == 0 {
		return fmt.Errorf("text_extensions must name at least one extension")
	}
	if config.Retry.Attempts < 1 {
		return fmt.Errorf("invalid retry attempts: %d (must be at least 1)", config.Retry.Attempts)
	}
	if d, err := time.ParseDuration(config.Retry.Delay); err != nil || d < 0 {
		return fmt.Errorf("invalid retry delay: %s", config.Retry.Delay)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// TextExtensionsClean splits TextExtensions and normalizes every entry to start with a dot.
func (c *Config) TextExtensionsClean() []string {
	var exts []string
	for _, part := range strings.FieldsFunc(c.TextExtensions, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part[0] != '.' {
			part = "." + part
		}
		exts = append(exts, part)
	}
	return exts
}

// Notify reports whether a success message should be shown.
func (c *Config) Notify() bool {
	return c.NotifyOnSuccess == nil || *c.NotifyOnSuccess
}

// RetryDelay returns the parsed delay between project item lookups.
func (c *Config) RetryDelay() time.Duration {
	d, err := time.ParseDuration(c.Retry.Delay)
	if err != nil {
		return time.Second
	}
	return d
}
