package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"greeninvoice.environment":    "GREENINVOICE_ENV",
	"greeninvoice.api_key_id":     "GREENINVOICE_API_KEY_ID",
	"greeninvoice.api_key_secret": "GREENINVOICE_API_KEY_SECRET",
	"greeninvoice.base_url":       "GREENINVOICE_BASE_URL",
	"logging.level":               "GREENINVOICE_LOG_LEVEL",
}

// Load loads the configuration from file and environment. A missing config
// file is not an error when credentials come from the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("GREENINVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".greeninvoice"))
		}

		// Check /etc
		v.AddConfigPath("/etc/greeninvoice/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Green Invoice defaults
	v.SetDefault("greeninvoice.environment", "sandbox")
	v.SetDefault("greeninvoice.timeout", 30*time.Second)
	v.SetDefault("greeninvoice.concurrency", 4)

	// Safety defaults
	v.SetDefault("safety.confirm_delete", true)
	v.SetDefault("safety.show_details", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	validEnvironments := map[string]bool{
		"live":    true,
		"sandbox": true,
	}
	if !validEnvironments[cfg.GreenInvoice.Environment] {
		return fmt.Errorf("greeninvoice.environment %q not in [live sandbox]", cfg.GreenInvoice.Environment)
	}

	if cfg.GreenInvoice.APIKeyID == "" || cfg.GreenInvoice.APIKeyID == "your-api-key-id" {
		return fmt.Errorf("greeninvoice.api_key_id must be set to a valid API key id")
	}

	if cfg.GreenInvoice.APIKeySecret == "" {
		return fmt.Errorf("greeninvoice.api_key_secret is required")
	}

	if cfg.GreenInvoice.Timeout <= 0 {
		return fmt.Errorf("greeninvoice.timeout must be positive")
	}

	if cfg.GreenInvoice.Concurrency < 1 {
		return fmt.Errorf("greeninvoice.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
