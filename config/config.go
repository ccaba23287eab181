package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/router"
)

// ErrInvalidConfig wraps parse and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Routing   RoutingConfig   `yaml:"routing"`
	HTTP      HTTPConfig      `yaml:"http"`
	Cache     CacheConfig     `yaml:"cache"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
	Output    OutputConfig    `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// RoutingConfig supplies routing settings for documents that omit
// routing_settings, and the router build parallelism.
type RoutingConfig struct {
	router.Settings `yaml:",inline"`
	// Parallelism is the number of goroutines precomputing shortest paths;
	// 0 selects GOMAXPROCS.
	Parallelism int `yaml:"parallelism" validate:"gte=0,lte=1024"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

type CacheConfig struct {
	// RouteTTL bounds how long a computed itinerary is served from memory;
	// 0 disables the cache.
	RouteTTL        time.Duration `yaml:"route_ttl" validate:"gte=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gte=0"`
}

type CatalogueConfig struct {
	StrictDuplicates      bool `yaml:"strict_duplicates"`
	MissingDistanceAsZero bool `yaml:"missing_distance_as_zero"`
}

type OutputConfig struct {
	Indent bool `yaml:"indent"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "json"},
		Routing: RoutingConfig{
			Settings: router.Settings{BusWaitTime: 6, BusVelocity: 40},
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Cache: CacheConfig{
			RouteTTL:        10 * time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

// Load resolves the configuration. path may be empty to skip the YAML layer.
// A .env file in the working directory is read if present; variables already
// set in the environment take precedence over it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// CatalogueOptions translates the catalogue section into builder options.
func (c *Config) CatalogueOptions() []catalogue.Option {
	var opts []catalogue.Option
	if c.Catalogue.StrictDuplicates {
		opts = append(opts, catalogue.WithStrictDuplicates())
	}
	if c.Catalogue.MissingDistanceAsZero {
		opts = append(opts, catalogue.WithMissingDistanceAsZero())
	}

	return opts
}

// LogLevel maps Log.Level to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a slog logger writing to w in the configured format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
