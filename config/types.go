package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	GreenInvoice GreenInvoiceConfig `mapstructure:"greeninvoice"`
	Filter       FilterConfig       `mapstructure:"filter"`
	Safety       SafetyConfig       `mapstructure:"safety"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// GreenInvoiceConfig holds API credentials and connection settings
type GreenInvoiceConfig struct {
	Environment  string        `mapstructure:"environment"`
	APIKeyID     string        `mapstructure:"api_key_id"`
	APIKeySecret string        `mapstructure:"api_key_secret"`
	Timeout      time.Duration `mapstructure:"timeout"`
	BaseURL      string        `mapstructure:"base_url"`
	UserAgent    string        `mapstructure:"user_agent"`
	Concurrency  int           `mapstructure:"concurrency"`
}

// FilterConfig contains named --where expressions, selected with --preset
type FilterConfig map[string]string

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
