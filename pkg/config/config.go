package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nodewee/doc-translate/pkg/constants"
)

// Default values
const (
	DefaultLogLevel       = "info"
	DefaultEnableVerbose  = false
	DefaultTimeoutSeconds = 0 // no timeout
)

// Config holds application configuration
type Config struct {
	// Persisted settings
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"`
	SourceLanguage string `yaml:"source_language"`
	TargetLanguage string `yaml:"target_language"`
	Format         string `yaml:"format"`
	ProxyURL       string `yaml:"proxy_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// Runtime settings (not persisted to file)
	LogLevel      string `yaml:"-"`
	EnableVerbose bool   `yaml:"-"`
}

// NewConfig returns a configuration populated with defaults
func NewConfig() *Config {
	return &Config{
		Endpoint:       constants.DefaultEndpoint,
		SourceLanguage: constants.DefaultSourceLanguage,
		TargetLanguage: constants.DefaultTargetLanguage,
		Format:         constants.DefaultFormat,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       DefaultLogLevel,
		EnableVerbose:  DefaultEnableVerbose,
	}
}

// DefaultConfig returns the configuration by loading from file or falling back to defaults
func DefaultConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config file, using defaults: %v\n", err)
		return NewConfig()
	}
	return config
}

// LoadConfigWithEnvOverrides loads config from file and applies environment variable overrides
func LoadConfigWithEnvOverrides() *Config {
	config := DefaultConfig()
	config.ApplyEnvOverrides()
	return config
}

// ApplyEnvOverrides applies environment variable overrides in place
func (c *Config) ApplyEnvOverrides() {
	if value := os.Getenv("GOOGLE_TRANSLATE_API_KEY"); value != "" {
		c.APIKey = value
	}
	if value := os.Getenv("DOC_TRANSLATE_API_KEY"); value != "" {
		c.APIKey = value
	}
	if value := os.Getenv("DOC_TRANSLATE_ENDPOINT"); value != "" {
		c.Endpoint = value
	}
	if value := os.Getenv("DOC_TRANSLATE_SOURCE"); value != "" {
		c.SourceLanguage = value
	}
	if value := os.Getenv("DOC_TRANSLATE_TARGET"); value != "" {
		c.TargetLanguage = value
	}
	if value := os.Getenv("DOC_TRANSLATE_FORMAT"); value != "" {
		c.Format = value
	}
	if value := os.Getenv("DOC_TRANSLATE_PROXY_URL"); value != "" {
		c.ProxyURL = value
	}
	if value := os.Getenv("DOC_TRANSLATE_TIMEOUT_SECONDS"); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			c.TimeoutSeconds = intVal
		}
	}
	if value := os.Getenv("DOC_TRANSLATE_LOG_LEVEL"); value != "" {
		c.LogLevel = value
	}
	if value := os.Getenv("DOC_TRANSLATE_VERBOSE"); value != "" {
		c.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return NewConfigValidator().Validate(c)
}

// Timeout returns the translation request timeout; zero means none
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Endpoint: %s, Source: %s, Target: %s, Format: %s, APIKey: %s}",
		c.Endpoint, c.SourceLanguage, c.TargetLanguage, c.Format, MaskSecret(c.APIKey))
}

// MaskSecret hides all but the last four characters of a secret
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
