package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/utils"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_TRANSLATE_API_KEY", "DOC_TRANSLATE_API_KEY", "DOC_TRANSLATE_ENDPOINT",
		"DOC_TRANSLATE_SOURCE", "DOC_TRANSLATE_TARGET", "DOC_TRANSLATE_FORMAT",
		"DOC_TRANSLATE_PROXY_URL", "DOC_TRANSLATE_TIMEOUT_SECONDS",
		"DOC_TRANSLATE_LOG_LEVEL", "DOC_TRANSLATE_VERBOSE",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.Endpoint != constants.DefaultEndpoint || c.SourceLanguage != "am" ||
		c.TargetLanguage != "en" || c.Format != "text" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.APIKey != "" {
		t.Fatal("no API key must be baked into defaults")
	}
	if c.Timeout() != 0 {
		t.Fatalf("default timeout should be disabled, got %v", c.Timeout())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigCreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.SourceLanguage != "am" {
		t.Fatalf("unexpected config %+v", c)
	}

	path := filepath.Join(home, AppDirName, ConfigFileName)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Fatalf("config file mode %v", info.Mode().Perm())
	}
}

func TestSetAndGetConfigValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SetConfigValue(KeyAPIKey, "secret-key-1234"); err != nil {
		t.Fatalf("set api key: %v", err)
	}
	if err := SetConfigValue(KeyTimeoutSeconds, "15"); err != nil {
		t.Fatalf("set timeout: %v", err)
	}

	v, err := GetConfigValue(KeyAPIKey)
	if err != nil || v != "secret-key-1234" {
		t.Fatalf("get api key: %v %v", v, err)
	}
	v, err = GetConfigValue(KeyTimeoutSeconds)
	if err != nil || v != 15 {
		t.Fatalf("get timeout: %v %v", v, err)
	}

	if err := SetConfigValue("nope", "x"); !utils.IsErrorType(err, utils.ErrorTypeValidation) {
		t.Fatalf("expected validation error for unknown key, got %v", err)
	}
	if err := SetConfigValue(KeyTimeoutSeconds, "soon"); !utils.IsErrorType(err, utils.ErrorTypeValidation) {
		t.Fatalf("expected validation error for bad int, got %v", err)
	}
	if err := SetConfigValue(KeyTargetLanguage, "am"); !utils.IsErrorType(err, utils.ErrorTypeConfig) {
		t.Fatalf("expected config error for same languages, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_TRANSLATE_API_KEY", "fallback")
	t.Setenv("DOC_TRANSLATE_API_KEY", "primary")
	t.Setenv("DOC_TRANSLATE_TARGET", "fr")
	t.Setenv("DOC_TRANSLATE_TIMEOUT_SECONDS", "30")
	t.Setenv("DOC_TRANSLATE_VERBOSE", "yes")

	c := NewConfig()
	c.ApplyEnvOverrides()

	if c.APIKey != "primary" {
		t.Fatalf("DOC_TRANSLATE_API_KEY should win, got %q", c.APIKey)
	}
	if c.TargetLanguage != "fr" || c.TimeoutSeconds != 30 || !c.EnableVerbose {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "relative endpoint", mutate: func(c *Config) { c.Endpoint = "/translate" }, errMsg: "endpoint"},
		{name: "same languages", mutate: func(c *Config) { c.TargetLanguage = "AM" }, errMsg: "must differ"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "markdown" }, errMsg: "invalid format"},
		{name: "bad proxy", mutate: func(c *Config) { c.ProxyURL = "ftp://proxy" }, errMsg: "proxy scheme"},
		{name: "negative timeout", mutate: func(c *Config) { c.TimeoutSeconds = -1 }, errMsg: "timeout"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errMsg: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestValidateForTranslationRequiresKey(t *testing.T) {
	c := NewConfig()
	if err := NewConfigValidator().ValidateForTranslation(c); !utils.IsErrorType(err, utils.ErrorTypeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	c.APIKey = "k"
	if err := NewConfigValidator().ValidateForTranslation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMaskSecret(t *testing.T) {
	if MaskSecret("") != "" || MaskSecret("abc") != "****" || MaskSecret("abcdefgh") != "****efgh" {
		t.Fatal("unexpected masking")
	}
	if strings.Contains(NewConfig().String(), "secret") {
		t.Fatal("string form must not leak secrets")
	}
}

func TestConfigValueReadsInMemoryFields(t *testing.T) {
	c := NewConfig()
	c.ProxyURL = "socks5://127.0.0.1:1080"
	c.TimeoutSeconds = 9

	for key, want := range map[string]interface{}{
		KeySourceLanguage: "am",
		KeyProxyURL:       "socks5://127.0.0.1:1080",
		KeyTimeoutSeconds: 9,
	} {
		if got, err := c.Value(key); err != nil || got != want {
			t.Fatalf("%s: got %v (%v), want %v", key, got, err, want)
		}
	}
	if _, err := c.Value("nope"); !utils.IsErrorType(err, utils.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
