// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Preference store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// DefaultTileURL is the MapTiler raster endpoint.
const DefaultTileURL = "https://api.maptiler.com/maps/{style}/{z}/{x}/{y}.png?key={key}"

// Config represents the root configuration file structure.
type Config struct {
	Attribution string      `yaml:"attribution,omitempty"`
	Dataset     string      `yaml:"dataset" validate:"required"`
	Tiles       Tiles       `yaml:"tiles"`
	Preferences Preferences `yaml:"preferences"`
}

// Tiles configures the tile proxy.
type Tiles struct {
	URL       string  `yaml:"url" validate:"required"`
	Key       string  `yaml:"key,omitempty"`
	CacheDir  string  `yaml:"cache_dir,omitempty"`
	ZoomLimit int     `yaml:"zoom,omitempty" validate:"gte=0,lte=22"`
	Quality   float32 `yaml:"quality,omitempty" validate:"gte=0,lte=100"`
}

// Preferences selects the preference store backend.
type Preferences struct {
	Backend string `yaml:"backend" validate:"oneof=file memory redis"`
	Path    string `yaml:"path,omitempty" validate:"required_if=Backend file"`
	Redis   Redis  `yaml:"redis,omitempty"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	Hash     string `yaml:"hash,omitempty"`
	DB       int    `yaml:"db,omitempty" validate:"gte=0"`
}

// Default returns a configuration usable without a config file.
func Default() *Config {
	return &Config{
		Attribution: "© MapTiler © OpenStreetMap contributors",
		Dataset:     "data/features.json",
		Tiles: Tiles{
			URL:       DefaultTileURL,
			CacheDir:  "tiles",
			ZoomLimit: 6,
			Quality:   80,
		},
		Preferences: Preferences{
			Backend: BackendFile,
			Path:    "data/preferences.yaml",
			Redis:   Redis{Addr: "127.0.0.1:6379"},
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path
// on top of Default. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
