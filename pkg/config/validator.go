package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/utils"
)

// ConfigValidator validates configuration values
type ConfigValidator struct{}

// NewConfigValidator creates a configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate collects every problem in the configuration into one error
func (v *ConfigValidator) Validate(c *Config) error {
	var errors []string

	if err := v.validateEndpoint(c.Endpoint); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateLanguages(c.SourceLanguage, c.TargetLanguage); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateFormat(c.Format); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateProxy(c.ProxyURL); err != nil {
		errors = append(errors, err.Error())
	}

	if c.TimeoutSeconds < 0 {
		errors = append(errors, "timeout must be non-negative")
	}

	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return utils.NewConfigError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errors, "; ")))
	}

	return nil
}

// ValidateForTranslation additionally requires an API key
func (v *ConfigValidator) ValidateForTranslation(c *Config) error {
	if err := v.Validate(c); err != nil {
		return err
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return utils.NewConfigError(
			"missing API key: set api_key in the config file, DOC_TRANSLATE_API_KEY, or --api-key", nil)
	}
	return nil
}

func (v *ConfigValidator) validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL: %q", endpoint)
	}
	return nil
}

func (v *ConfigValidator) validateLanguages(source, target string) error {
	if source == "" || target == "" {
		return fmt.Errorf("source and target languages are required")
	}
	if strings.EqualFold(source, target) {
		return fmt.Errorf("source and target languages must differ")
	}
	return nil
}

func (v *ConfigValidator) validateFormat(format string) error {
	if format == constants.DefaultFormat || format == constants.FormatHTML {
		return nil
	}
	return fmt.Errorf("invalid format: %s", format)
}

func (v *ConfigValidator) validateProxy(proxyURL string) error {
	if proxyURL == "" {
		return nil
	}
	u, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %v", err)
	}
	switch u.Scheme {
	case "http", "https", "socks5":
		return nil
	default:
		return fmt.Errorf("unsupported proxy scheme: %q", u.Scheme)
	}
}

func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s", level)
}
