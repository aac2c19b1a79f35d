package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr               string `mapstructure:"APP_ADDR"`
	Environment        string `mapstructure:"APP_ENV"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	APIKeyHash         string `mapstructure:"API_KEY_HASH"`
	MaxBodyBytes       int64  `mapstructure:"MAX_BODY_BYTES"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	PayrollTaxTables   string `mapstructure:"PAYROLL_TAX_TABLES"`
	MetricsEnabled     bool   `mapstructure:"METRICS_ENABLED"`
	InvoiceLanguage    string `mapstructure:"INVOICE_LANGUAGE"`
	ConfigFile         string `mapstructure:"CONFIG_FILE"`
}

var defaults = map[string]any{
	"APP_ADDR":              ":8080",
	"APP_ENV":               "development",
	"JWT_SECRET":            "",
	"API_KEY_HASH":          "",
	"MAX_BODY_BYTES":        1048576,
	"RATE_LIMIT_PER_MINUTE": 120,
	"PAYROLL_TAX_TABLES":    "",
	"METRICS_ENABLED":       true,
	"INVOICE_LANGUAGE":      "",
	"CONFIG_FILE":           "",
}

// Load reads the configuration from the environment. When CONFIG_FILE names
// a file its values sit between the defaults and the environment.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.IsProduction() {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if strings.TrimSpace(c.APIKeyHash) != "" && !strings.HasPrefix(c.APIKeyHash, "$2") {
			return fmt.Errorf("API_KEY_HASH must be a bcrypt hash")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	switch strings.ToLower(c.InvoiceLanguage) {
	case "", "nl", "en", "de":
	default:
		return fmt.Errorf("INVOICE_LANGUAGE must be nl, en or de")
	}
	return nil
}
