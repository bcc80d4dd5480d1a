package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"StockViewer/internal/model"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string        `yaml:"provider"` // yahoo, polygon or mock
		BaseURL  string        `yaml:"base_url"`
		APIKey   string        `yaml:"api_key"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"data_source"`
	View struct {
		Frequency  string `yaml:"frequency"`
		Range      string `yaml:"range"`
		Windows    []int  `yaml:"windows"`
		WithVolume bool   `yaml:"with_volume"`
		OutputDir  string `yaml:"output_dir"`
	} `yaml:"view"`
	Watch struct {
		Symbols []string `yaml:"symbols"`
		Cron    string   `yaml:"cron"`
	} `yaml:"watch"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("load .env: %v", err)
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse FETCH_TIMEOUT: %w", err)
		}
		cfg.DataSource.Timeout = d
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCH_SYMBOLS"); v != "" {
		cfg.Watch.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("CRON_WATCH"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.View.OutputDir = v
	}
	if v := os.Getenv("WITH_VOLUME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.View.WithVolume = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	cfg.DataSource.Provider = strings.ToLower(cfg.DataSource.Provider)
	if cfg.DataSource.Timeout == 0 {
		cfg.DataSource.Timeout = 30 * time.Second
	}
	if cfg.View.Frequency == "" {
		cfg.View.Frequency = "Daily"
	}
	if cfg.View.Range == "" {
		cfg.View.Range = "1Y"
	}
	if cfg.View.OutputDir == "" {
		cfg.View.OutputDir = "output"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 30 16 * * 1-5"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "polygon":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for polygon")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if c.DataSource.Timeout < 0 {
		return fmt.Errorf("data_source.timeout must not be negative")
	}
	if _, err := model.ParseFrequency(c.View.Frequency); err != nil {
		return fmt.Errorf("view.frequency: %w", err)
	}
	if _, err := model.ParseRange(c.View.Range); err != nil {
		return fmt.Errorf("view.range: %w", err)
	}
	for _, w := range c.View.Windows {
		if w <= 0 {
			return fmt.Errorf("view.windows: window %d must be positive", w)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Frequency returns the parsed view frequency. Call Validate first.
func (c *Config) Frequency() model.Frequency {
	f, _ := model.ParseFrequency(c.View.Frequency)
	return f
}

// RangeDays returns the parsed view range in days. Call Validate first.
func (c *Config) RangeDays() int {
	d, _ := model.ParseRange(c.View.Range)
	return d
}

// SetupLogging configures the global logger from the log section.
func (c *Config) SetupLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(c.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
}
