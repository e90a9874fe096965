// Package config provides configuration loading and validation for the CLI and the API server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. RESUME_ANALYZER_SERVER_PORT.
	EnvPrefix = "RESUME_ANALYZER"

	// DefaultConfigName is looked up in the working directory when no --config is given.
	DefaultConfigName = "resume-analyzer.yaml"
)

// Config is the full application configuration. Values come from defaults,
// then the config file, then RESUME_ANALYZER_* variables, then bound flags.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate-limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// DataConfig points at data files. Empty paths select the built-in data;
// an empty model path disables vector scoring.
type DataConfig struct {
	Taxonomy  string `mapstructure:"taxonomy"`
	Catalog   string `mapstructure:"catalog"`
	Model     string `mapstructure:"model"`
	Knowledge string `mapstructure:"knowledge"`
}

// AnalysisConfig tunes the analysis engine.
type AnalysisConfig struct {
	TopMatches int `mapstructure:"top-matches" validate:"min=1,max=100"`
	Workers    int `mapstructure:"workers" validate:"min=1,max=64"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	MaxUploadBytes  int64         `mapstructure:"max-upload-bytes" validate:"min=1024"`
	CORSOrigin      string        `mapstructure:"cors-origin" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" validate:"min=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	RequestsPerSecond float64       `mapstructure:"requests-per-second" validate:"gt=0"`
	Burst             int           `mapstructure:"burst" validate:"min=1"`
	CleanupInterval   time.Duration `mapstructure:"cleanup-interval" validate:"min=0"`
	Whitelist         []string      `mapstructure:"whitelist" validate:"dive,ip"`
	Blacklist         []string      `mapstructure:"blacklist" validate:"dive,ip"`
}

// LogConfig selects the logger encoding and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers every key with its default so that environment
// variables are honoured by Unmarshal even when no config file sets the key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.taxonomy", "")
	v.SetDefault("data.catalog", "")
	v.SetDefault("data.model", "")
	v.SetDefault("data.knowledge", "")

	v.SetDefault("analysis.top-matches", 5)
	v.SetDefault("analysis.workers", 4)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.max-upload-bytes", 10*1024*1024)
	v.SetDefault("server.cors-origin", "*")
	v.SetDefault("server.read-timeout", 30*time.Second)
	v.SetDefault("server.write-timeout", 60*time.Second)
	v.SetDefault("server.shutdown-timeout", 10*time.Second)

	v.SetDefault("auth.jwt-secret", "")
	v.SetDefault("auth.expiration-hours", 24)

	v.SetDefault("rate-limit.enabled", true)
	v.SetDefault("rate-limit.requests-per-second", 2.0)
	v.SetDefault("rate-limit.burst", 10)
	v.SetDefault("rate-limit.cleanup-interval", 5*time.Minute)
	v.SetDefault("rate-limit.whitelist", []string{})
	v.SetDefault("rate-limit.blacklist", []string{})

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// Load reads configuration into v and decodes it. When configFile is empty,
// DefaultConfigName is read from the working directory if it exists.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultConfigName, ".yaml"))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration produced by defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Auth.normalize(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
