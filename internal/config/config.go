// Package config provides configuration loading and validation for remap runs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/remap/memo"
	"github.com/katalvlaran/remap/pipeline"
)

// Sentinel validation errors.
var (
	ErrInvalidWorkers   = errors.New("pipeline workers must be positive")
	ErrInvalidCacheSize = errors.New("cache sizes must be positive")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidLogFormat = errors.New("unknown log format")
)

// Default configuration values.
const (
	defaultWorkers    = 1
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	envPrefix         = "REMAP"
	defaultConfigName = "remap"
	defaultConfigType = "yaml"
)

// defaultConfigDirs are searched in order when no path is given.
var defaultConfigDirs = []string{".", "./config", "/etc/remap"}

// Config holds all configuration for a remap run.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PipelineConfig holds fold settings.
type PipelineConfig struct {
	Workers  int  `mapstructure:"workers"`
	Coalesce bool `mapstructure:"coalesce"`
}

// CacheConfig holds point-evaluation cache settings.
type CacheConfig struct {
	NumCounters int64 `mapstructure:"num_counters"`
	MaxCost     int64 `mapstructure:"max_cost"`
	BufferItems int64 `mapstructure:"buffer_items"`
	Enabled     bool  `mapstructure:"enabled"`
	Metrics     bool  `mapstructure:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches ./remap.yaml, ./config/remap.yaml and
// /etc/remap/remap.yaml; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(defaultConfigName)
		viperCfg.SetConfigType(defaultConfigType)
		for _, dir := range defaultConfigDirs {
			viperCfg.AddConfigPath(dir)
		}
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// PipelineOptions translates the pipeline section into Run options.
func (c *Config) PipelineOptions() []pipeline.Option {
	opts := []pipeline.Option{pipeline.WithWorkers(c.Pipeline.Workers)}
	if !c.Pipeline.Coalesce {
		opts = append(opts, pipeline.WithoutCoalesce())
	}

	return opts
}

// MemoConfig translates the cache section into memo sizing.
func (c *Config) MemoConfig() memo.Config {
	return memo.Config{
		NumCounters: c.Cache.NumCounters,
		MaxCost:     c.Cache.MaxCost,
		BufferItems: c.Cache.BufferItems,
		Metrics:     c.Cache.Metrics,
	}
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Pipeline defaults.
	viperCfg.SetDefault("pipeline.workers", defaultWorkers)
	viperCfg.SetDefault("pipeline.coalesce", true)

	// Cache defaults.
	viperCfg.SetDefault("cache.enabled", false)
	viperCfg.SetDefault("cache.metrics", false)
	viperCfg.SetDefault("cache.num_counters", memo.DefaultNumCounters)
	viperCfg.SetDefault("cache.max_cost", memo.DefaultMaxCost)
	viperCfg.SetDefault("cache.buffer_items", memo.DefaultBufferItems)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Pipeline.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Pipeline.Workers)
	}

	if config.Cache.NumCounters <= 0 || config.Cache.MaxCost <= 0 || config.Cache.BufferItems <= 0 {
		return fmt.Errorf("%w: counters=%d cost=%d buffer=%d", ErrInvalidCacheSize,
			config.Cache.NumCounters, config.Cache.MaxCost, config.Cache.BufferItems)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}
