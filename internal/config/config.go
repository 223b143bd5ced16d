package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"kcisum/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Report settings
	OutputPath string
	Title      string
	Status     string
	Window     time.Duration
	StorageURL string

	// Store settings
	Store       string
	RecordsPath string
	Table       string
	EnvFile     string

	// Paths to ignore when scanning a records directory
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	OutputPath  string
	Title       string
	Status      string
	Window      time.Duration
	WindowSet   bool // window given explicitly, even if not positive
	Store       string
	RecordsPath string
	Board       string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputPath:  DefaultOutputPath,
		Title:       DefaultTitle,
		Status:      DefaultStatus,
		Window:      DefaultWindow,
		StorageURL:  DefaultStorageURL,
		Store:       DefaultStore,
		RecordsPath: DefaultRecordsPath,
		Table:       DefaultTable,
		EnvFile:     DefaultEnvFile,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the optional config file and flags, in that order
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.ReadFile(flags.ConfigFile); err != nil {
		return nil, domain.NewConfigError("load config", err)
	}
	cfg.Apply(flags)
	if err := cfg.Validate(); err != nil {
		return nil, domain.NewConfigError("invalid config", err)
	}
	return cfg, nil
}

// Apply overrides settings with the flags that were set
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Status != "" {
		c.Status = flags.Status
	}
	if flags.WindowSet || flags.Window > 0 {
		c.Window = flags.Window
	}
	if flags.Store != "" {
		c.Store = flags.Store
	}
	if flags.RecordsPath != "" {
		c.RecordsPath = flags.RecordsPath
	}
}

// Validate checks the settings the renderer depends on
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %s", c.Window)
	}
	if c.Status == "" {
		return fmt.Errorf("status label must not be empty")
	}
	switch c.Store {
	case StoreJSON, StoreMySQL:
	default:
		return fmt.Errorf("unknown store %q (expected %q or %q)", c.Store, StoreJSON, StoreMySQL)
	}
	return nil
}

// GetOutputPath returns the absolute path of the summary page
func (c *Config) GetOutputPath() string {
	if abs, err := filepath.Abs(c.OutputPath); err == nil {
		return abs
	}
	return c.OutputPath
}

// DatabaseSettings holds the mysql connection settings
type DatabaseSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// GetDatabaseSettings reads connection settings from the environment, loading the env file first if it exists
func (c *Config) GetDatabaseSettings() DatabaseSettings {
	if c.EnvFile != "" {
		// .env file might not exist, that's okay - use environment variables
		_ = godotenv.Load(c.EnvFile)
	}

	return DatabaseSettings{
		Host:     getenv("DB_HOST", "127.0.0.1"),
		Port:     getenv("DB_PORT", "3306"),
		User:     getenv("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getenv("DB_DATABASE", "kernelci"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
