package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"twsecli/internal/dataprocessing"
)

// Config represents the complete application configuration. Values come from
// environment variables (prefix TWSE) layered over an optional config.yaml;
// the environment wins, defaults fill whatever neither source set.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int             `yaml:"port" envconfig:"PORT" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	Title           string          `yaml:"title" envconfig:"TITLE"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains request rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PipelineConfig contains the tunables of the cleaning/ranking pipeline. The
// exclusion list is deliberately configuration, not a naming-convention
// derivation: the classification vocabulary mixes short and 業-suffixed
// spellings and the set may need to grow.
type PipelineConfig struct {
	TopRevenue          int      `yaml:"top_revenue" envconfig:"TOP_REVENUE" validate:"gt=0"`
	TopComposite        int      `yaml:"top_composite" envconfig:"TOP_COMPOSITE" validate:"gt=0"`
	ExcludedIndustries  []string `yaml:"excluded_industries" envconfig:"EXCLUDED_INDUSTRIES"`
	ValueColumnFallback string   `yaml:"value_column_fallback" envconfig:"VALUE_COLUMN_FALLBACK"`
	Encodings           []string `yaml:"encodings" envconfig:"ENCODINGS"`
}

// Load loads configuration from environment variables and the optional
// config file, fills defaults and validates the result.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file path; empty means env only.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Environment overrides only what is actually set; defaults then fill
	// whatever is still zero.
	if err := envconfig.Process("TWSE", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills everything neither the file nor the environment set.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultHTTPTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultHTTPTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Server.Title == "" {
		c.Server.Title = DefaultTitle
	}
	if c.Server.RateLimit.RPS == 0 {
		c.Server.RateLimit.RPS = 50
	}
	if c.Server.RateLimit.Burst == 0 {
		c.Server.RateLimit.Burst = 25
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}
	if c.Pipeline.TopRevenue == 0 {
		c.Pipeline.TopRevenue = DefaultTopRevenue
	}
	if c.Pipeline.TopComposite == 0 {
		c.Pipeline.TopComposite = DefaultTopComposite
	}
	if len(c.Pipeline.ExcludedIndustries) == 0 {
		c.Pipeline.ExcludedIndustries = dataprocessing.DefaultExcludedIndustries
	}
	if c.Pipeline.ValueColumnFallback == "" {
		c.Pipeline.ValueColumnFallback = dataprocessing.DefaultValueColumn
	}
	if len(c.Pipeline.Encodings) == 0 {
		c.Pipeline.Encodings = dataprocessing.DefaultEncodings
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// PipelineSettings converts the configuration into the pipeline's own config
// type.
func (c *Config) PipelineSettings() dataprocessing.Config {
	return dataprocessing.Config{
		TopRevenue:          c.Pipeline.TopRevenue,
		TopComposite:        c.Pipeline.TopComposite,
		ExcludedIndustries:  c.Pipeline.ExcludedIndustries,
		ValueColumnFallback: c.Pipeline.ValueColumnFallback,
	}
}

// findConfigFile checks the conventional config file locations.
func findConfigFile() string {
	for _, location := range []string{"config.yaml", "configs/config.yaml"} {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the stock configuration used by tests and the CLI when no
// environment or file overrides exist.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Server.RateLimit.Enabled = true
	return cfg
}
