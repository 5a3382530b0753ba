package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. AT502_SERVER__ADDR sets server.addr.
const EnvPrefix = "AT502_"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Store     StoreConfig     `json:"store"`
	Estimator EstimatorConfig `json:"estimator"`
	Chart     ChartConfig     `json:"chart"`
	Logging   LoggingConfig   `json:"logging"`
}

// ServerConfig holds HTTP form server settings.
type ServerConfig struct {
	Addr            string        `json:"addr"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// StoreConfig locates the preference files.
type StoreConfig struct {
	RunwayFile   string `json:"runway_file"`
	FeedbackFile string `json:"feedback_file"`
}

// EstimatorConfig sizes the memo table. Zero disables memoization.
type EstimatorConfig struct {
	MemoSize int `json:"memo_size"`
}

// ChartConfig controls climb profile sampling.
type ChartConfig struct {
	Points   int     `json:"points"`
	MaxAltFt float64 `json:"max_alt_ft"`
}

// LoggingConfig selects log level and optional rotating file output.
type LoggingConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8502",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{
			RunwayFile:   "runway_conditions.json",
			FeedbackFile: "ratings.json",
		},
		Estimator: EstimatorConfig{MemoSize: 256},
		Chart:     ChartConfig{Points: 50, MaxAltFt: 10000},
		Logging:   LoggingConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// Load reads the optional file at path, applies AT502_ environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that cannot fall back to a usable value.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Store.RunwayFile == "" {
		return fmt.Errorf("store.runway_file is required")
	}
	if c.Store.FeedbackFile == "" {
		return fmt.Errorf("store.feedback_file is required")
	}
	if c.Estimator.MemoSize < 0 {
		return fmt.Errorf("estimator.memo_size must not be negative")
	}
	if c.Chart.Points < 2 {
		return fmt.Errorf("chart.points must be at least 2, got %d", c.Chart.Points)
	}
	if c.Chart.MaxAltFt <= 0 {
		return fmt.Errorf("chart.max_alt_ft must be positive")
	}
	return nil
}
