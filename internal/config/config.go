package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"bizdash/internal/extraction"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BIZDASH"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig        `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig      `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig       `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig         `yaml:"paths" envconfig:"PATHS"`
	Sources  []extraction.Source `yaml:"sources" ignored:"true"`
	// LayoutOverrides are the partial layouts from the file; Layouts holds
	// the resolved layout per kind after Load.
	LayoutOverrides map[string]extraction.LayoutOverride `yaml:"layouts" ignored:"true"`
	Layouts         map[string]extraction.Layout         `yaml:"-" ignored:"true"`
}

// ServerConfig contains HTTP server configuration for the dashboard API
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// Dataset selects the snapshot collection the filter session works on.
	Dataset string `yaml:"dataset" envconfig:"DATASET" default:"invoices"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/bizdash.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	BaseDir     string `yaml:"base_dir" envconfig:"BASE_DIR" default:"."`
	SourceDir   string `yaml:"source_dir" envconfig:"SOURCE_DIR" default:"data/sources"`
	SnapshotDir string `yaml:"snapshot_dir" envconfig:"SNAPSHOT_DIR" default:"data/snapshot"`
	ExportsDir  string `yaml:"exports_dir" envconfig:"EXPORTS_DIR" default:"data/exports"`
	LogsDir     string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if configFile := getConfigFilePath(); configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. Values explicitly set in
// the environment win; everything else comes from the file when present.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := envConfig

	if fileConfig.Server.Port != 0 && !envSet("SERVER_PORT") {
		merged.Server.Port = fileConfig.Server.Port
	}
	if fileConfig.Server.Dataset != "" && !envSet("SERVER_DATASET") {
		merged.Server.Dataset = fileConfig.Server.Dataset
	}
	if fileConfig.Logging.Level != "" && !envSet("LOGGING_LEVEL") {
		merged.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" && !envSet("LOGGING_OUTPUT") {
		merged.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && !envSet("LOGGING_FILE_PATH") {
		merged.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.BaseDir != "" && !envSet("PATHS_BASE_DIR") {
		merged.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if fileConfig.Paths.SourceDir != "" && !envSet("PATHS_SOURCE_DIR") {
		merged.Paths.SourceDir = fileConfig.Paths.SourceDir
	}
	if fileConfig.Paths.SnapshotDir != "" && !envSet("PATHS_SNAPSHOT_DIR") {
		merged.Paths.SnapshotDir = fileConfig.Paths.SnapshotDir
	}
	if fileConfig.Paths.ExportsDir != "" && !envSet("PATHS_EXPORTS_DIR") {
		merged.Paths.ExportsDir = fileConfig.Paths.ExportsDir
	}
	if len(fileConfig.Security.AllowedOrigins) > 0 && !envSet("SECURITY_ALLOWED_ORIGINS") {
		merged.Security.AllowedOrigins = fileConfig.Security.AllowedOrigins
	}

	// Sources and layouts only come from the file
	merged.Sources = fileConfig.Sources
	merged.LayoutOverrides = fileConfig.LayoutOverrides

	return merged
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + name)
	return ok
}

// applyDefaults fills the source list and merges layout overrides over the
// built-in layouts.
func (c *Config) applyDefaults() {
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources()
	}

	layouts := extraction.DefaultLayouts()
	for kind, override := range c.LayoutOverrides {
		layouts[kind] = layouts[kind].Merge(override)
	}
	c.Layouts = layouts
}

// Layout returns the column layout for a source kind.
func (c *Config) Layout(kind string) (extraction.Layout, bool) {
	l, ok := c.Layouts[kind]
	return l, ok
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Server.Dataset {
	case extraction.KindInvoices, extraction.KindContracts, extraction.KindSales:
	default:
		return fmt.Errorf("invalid dataset %q", c.Server.Dataset)
	}

	for i, src := range c.Sources {
		if strings.TrimSpace(src.Path) == "" {
			return fmt.Errorf("source %d has no path", i)
		}
		if _, ok := c.Layouts[src.Kind]; !ok {
			return fmt.Errorf("source %s has unknown kind %q", src.Path, src.Kind)
		}
	}

	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if explicit := os.Getenv(EnvPrefix + "_CONFIG_FILE"); explicit != "" {
		return explicit
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Dataset:         extraction.KindInvoices,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     50,
				Burst:   25,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/bizdash.log",
		},
		Paths: PathsConfig{
			BaseDir:     ".",
			SourceDir:   "data/sources",
			SnapshotDir: "data/snapshot",
			ExportsDir:  "data/exports",
			LogsDir:     "logs",
		},
	}
	cfg.applyDefaults()
	return cfg
}
