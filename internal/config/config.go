package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/utils"
)

type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Timezone string        `yaml:"timezone"`
	Log      LogConfig     `yaml:"log"`
	Backups  BackupConfig  `yaml:"backups"`

	// Dir is the directory holding the config file, lockfile, logs and backups.
	Dir string `yaml:"-"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // json, sqlite or badger
	Path    string `yaml:"path"`    // file (json, sqlite) or directory (badger)
}

type LogConfig struct {
	Debug      bool   `yaml:"debug"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type BackupConfig struct {
	Max int `yaml:"max"`
}

// Default returns the configuration used when no file exists, rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Storage:  StorageConfig{Backend: constants.DefaultBackend},
		Timezone: constants.DefaultTimezone,
		Log:      LogConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
		Backups:  BackupConfig{Max: constants.MaxBackups},
		Dir:      dir,
	}
}

// Load reads the YAML file at path (if present), applies environment overrides
// and fills derived defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	c := Default(filepath.Dir(path))
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	envOverride(&c.Storage.Backend, constants.EnvBackend)
	envOverride(&c.Storage.Path, constants.EnvPath)
	envOverride(&c.Timezone, constants.EnvTimezone)
	envOverrideBool(&c.Log.Debug, constants.EnvDebug)

	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c as YAML to path, creating the directory.
func (c *Config) Save(path string) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks the values a user can put in the file.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case constants.BackendJSON, constants.BackendSQLite, constants.BackendBadger:
	default:
		return fmt.Errorf("unknown storage backend %q (expected json, sqlite or badger)", c.Storage.Backend)
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if c.Backups.Max < 1 {
		return fmt.Errorf("backups.max must be at least 1, got %d", c.Backups.Max)
	}
	return nil
}

// normalize fills paths that depend on the backend and expands "~".
func (c *Config) normalize() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = constants.DefaultBackend
	}
	if c.Backups.Max == 0 {
		c.Backups.Max = constants.MaxBackups
	}

	var err error
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(c.Dir, DefaultStorageFile(c.Storage.Backend))
	} else if c.Storage.Path, err = ExpandHome(c.Storage.Path); err != nil {
		return err
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Join(c.Dir, "logs")
	} else if c.Log.Dir, err = ExpandHome(c.Log.Dir); err != nil {
		return err
	}
	return c.Validate()
}

// ApplyFlags layers command line overrides on top of the file and environment.
// Empty values leave the current setting alone. Changing the backend without
// a path moves a defaulted path to the new backend's default file.
func (c *Config) ApplyFlags(backend, path string, debug bool) error {
	if backend != "" {
		if path == "" && c.Storage.Path == filepath.Join(c.Dir, DefaultStorageFile(c.Storage.Backend)) {
			c.Storage.Path = ""
		}
		c.Storage.Backend = backend
	}
	if path != "" {
		c.Storage.Path = path
	}
	if debug {
		c.Log.Debug = true
	}
	return c.normalize()
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

// DefaultStorageFile names the record file or directory for a backend.
func DefaultStorageFile(backend string) string {
	switch backend {
	case constants.BackendSQLite:
		return constants.DefaultSQLiteFile
	case constants.BackendBadger:
		return constants.DefaultBadgerDir
	default:
		return constants.DefaultJSONFile
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}
