// ABOUTME: Hypertrophy configuration management with backend selection.
// ABOUTME: Handles the config file, HYPERTROPHY_* env overrides, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/harperreed/hypertrophy/internal/charm"
	"github.com/harperreed/hypertrophy/internal/logging"
	"github.com/harperreed/hypertrophy/internal/progression"
	"github.com/harperreed/hypertrophy/internal/storage"
)

// Backends lists the supported storage backends.
var Backends = []string{"sqlite", "badger", "charm", "memory"}

// Config stores hypertrophy configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", "charm", or "memory".
	Backend string `json:"backend,omitempty" env:"HYPERTROPHY_BACKEND"`

	// DataDir is the root directory for data storage.
	// SQLite puts hypertrophy.db here. Badger uses a badger/ folder.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/hypertrophy.
	DataDir string `json:"data_dir,omitempty" env:"HYPERTROPHY_DATA_DIR"`

	// ProgramFile is an optional YAML or TOML program scheme.
	ProgramFile string `json:"program_file,omitempty" env:"HYPERTROPHY_PROGRAM_FILE"`

	// CharmHost overrides the charm server used by the charm backend.
	CharmHost string `json:"charm_host,omitempty" env:"HYPERTROPHY_CHARM_HOST"`

	LogLevel  string `json:"log_level,omitempty" env:"HYPERTROPHY_LOG_LEVEL"`
	LogFormat string `json:"log_format,omitempty" env:"HYPERTROPHY_LOG_FORMAT"`
	LogFile   string `json:"log_file,omitempty" env:"HYPERTROPHY_LOG_FILE"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the key-value store for the configured backend.
func (c *Config) OpenStorage() (storage.Store, error) {
	return c.OpenBackend(c.GetBackend())
}

// OpenBackend opens a specific backend using this config's data directory.
func (c *Config) OpenBackend(backend string) (storage.Store, error) {
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "hypertrophy.db"))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		return charm.Open(charm.DefaultDBName, c.CharmHost)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// LoadScheme returns the program scheme from ProgramFile, or the default
// 12-week scheme when none is configured.
func (c *Config) LoadScheme() (progression.Scheme, error) {
	if c.ProgramFile == "" {
		return progression.DefaultScheme(), nil
	}
	return progression.LoadScheme(ExpandPath(c.ProgramFile))
}

// LoggerParams maps the log settings onto logging setup parameters.
func (c *Config) LoggerParams() logging.LoggerSetupParams {
	return logging.LoggerSetupParams{
		LogFileName:   ExpandPath(c.LogFile),
		LogLevel:      c.LogLevel,
		LogFormatJSON: strings.EqualFold(c.LogFormat, "json"),
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hypertrophy", "config.json")
}

// Load reads config from disk and applies HYPERTROPHY_* environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
