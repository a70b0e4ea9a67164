package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/utils"
)

const (
	ConfigFileName = "config.yaml"
	AppDirName     = ".doc-translate"
)

// Persisted configuration keys
const (
	KeyAPIKey         = "api_key"
	KeyEndpoint       = "endpoint"
	KeySourceLanguage = "source_language"
	KeyTargetLanguage = "target_language"
	KeyFormat         = "format"
	KeyProxyURL       = "proxy_url"
	KeyTimeoutSeconds = "timeout_seconds"
)

// ConfigFile represents the YAML configuration file structure
type ConfigFile struct {
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"`
	SourceLanguage string `yaml:"source_language"`
	TargetLanguage string `yaml:"target_language"`
	Format         string `yaml:"format"`
	ProxyURL       string `yaml:"proxy_url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// GetConfigDir returns the user configuration directory (~/.doc-translate)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}

	return filepath.Join(homeDir, AppDirName), nil
}

// GetConfigFilePath returns the full path to the configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from file or creates a default one if it does not exist
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to get config file path")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfigFile(configPath)
	}

	return loadConfigFromFile(configPath)
}

// createDefaultConfigFile writes the defaults to configPath
func createDefaultConfigFile(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), constants.DefaultDirPermission); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	configFile := configToConfigFile(NewConfig())
	if err := saveConfigFile(configPath, configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to save default config file")
	}

	fmt.Fprintf(os.Stderr, "✅ Created default configuration file: %s\n", configPath)
	return configFileToConfig(configFile), nil
}

// loadConfigFromFile loads configuration from an existing file
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to read config file")
	}

	var configFile ConfigFile
	if err := yaml.Unmarshal(data, &configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeConfig, "failed to parse config file")
	}

	return configFileToConfig(&configFile), nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), constants.DefaultDirPermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	return saveConfigFile(configPath, configToConfigFile(config))
}

// saveConfigFile saves ConfigFile to disk. The file holds the API key, so it
// is only readable by the owner.
func saveConfigFile(configPath string, configFile *ConfigFile) error {
	data, err := yaml.Marshal(configFile)
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeConfig, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write config file")
	}

	return nil
}

// configFileToConfig converts ConfigFile to Config, filling blanks with defaults
func configFileToConfig(cf *ConfigFile) *Config {
	config := NewConfig()
	config.APIKey = cf.APIKey
	config.ProxyURL = cf.ProxyURL
	config.TimeoutSeconds = cf.TimeoutSeconds
	if cf.Endpoint != "" {
		config.Endpoint = cf.Endpoint
	}
	if cf.SourceLanguage != "" {
		config.SourceLanguage = cf.SourceLanguage
	}
	if cf.TargetLanguage != "" {
		config.TargetLanguage = cf.TargetLanguage
	}
	if cf.Format != "" {
		config.Format = cf.Format
	}
	return config
}

// configToConfigFile converts Config to ConfigFile
func configToConfigFile(c *Config) *ConfigFile {
	return &ConfigFile{
		APIKey:         c.APIKey,
		Endpoint:       c.Endpoint,
		SourceLanguage: c.SourceLanguage,
		TargetLanguage: c.TargetLanguage,
		Format:         c.Format,
		ProxyURL:       c.ProxyURL,
		TimeoutSeconds: c.TimeoutSeconds,
	}
}

// GetConfigValue gets a specific configuration value by key
func GetConfigValue(key string) (interface{}, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return config.Value(key)
}

// Value returns the persisted setting named key
func (c *Config) Value(key string) (interface{}, error) {
	switch key {
	case KeyAPIKey:
		return c.APIKey, nil
	case KeyEndpoint:
		return c.Endpoint, nil
	case KeySourceLanguage:
		return c.SourceLanguage, nil
	case KeyTargetLanguage:
		return c.TargetLanguage, nil
	case KeyFormat:
		return c.Format, nil
	case KeyProxyURL:
		return c.ProxyURL, nil
	case KeyTimeoutSeconds:
		return c.TimeoutSeconds, nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}
}

// SetConfigValue sets a specific configuration value by key and persists it
// after validation
func SetConfigValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case KeyAPIKey:
		config.APIKey = value
	case KeyEndpoint:
		config.Endpoint = value
	case KeySourceLanguage:
		config.SourceLanguage = value
	case KeyTargetLanguage:
		config.TargetLanguage = value
	case KeyFormat:
		config.Format = value
	case KeyProxyURL:
		config.ProxyURL = value
	case KeyTimeoutSeconds:
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return utils.NewValidationError("timeout_seconds must be an integer", err)
		}
		config.TimeoutSeconds = seconds
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	return SaveConfig(config)
}

// ListConfigKeys returns all available configuration keys
func ListConfigKeys() []string {
	return []string{
		KeyAPIKey,
		KeyEndpoint,
		KeySourceLanguage,
		KeyTargetLanguage,
		KeyFormat,
		KeyProxyURL,
		KeyTimeoutSeconds,
	}
}
