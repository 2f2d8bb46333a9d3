package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/catan/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Defaults used when data/app.yaml leaves a field empty.
const (
	DefaultWindowTitle        = "Catan Tutorial"
	DefaultContentPath        = "data/content.yaml"
	DefaultResourceConfigPath = "assets/config/resources.yaml"
	DefaultFontSize           = 16.0
	DefaultSectionSlots       = 6
	DefaultVolume             = 0.8
)

// AppConfig is the application configuration loaded from data/app.yaml.
type AppConfig struct {
	Window WindowConfig `yaml:"window"`

	// ContentPath is the tutorial content file.
	ContentPath string `yaml:"contentPath"`

	// ResourceConfigPath maps resource IDs to asset files.
	ResourceConfigPath string `yaml:"resourceConfig"`

	Font FontConfig `yaml:"font"`

	// SectionSlots is the number of section buttons on the section select screen.
	SectionSlots int `yaml:"sectionSlots"`

	// Watch reloads content when the YAML changes on disk.
	Watch bool `yaml:"watch"`

	// Volume of every sound, 0 to 1. Zero uses DefaultVolume; mute with
	// the -mute flag instead.
	Volume float64 `yaml:"volume"`
}

// WindowConfig is the initial OS window. The logical screen is always
// GameWindowWidth x GameWindowHeight.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// FontConfig selects the UI font. An empty path uses the built-in Go font.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// DefaultAppConfig returns the configuration used without a config file.
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	applyAppDefaults(cfg)
	return cfg
}

// LoadAppConfig loads and validates an app config file.
// The file is read from disk first, then from the embedded data.
//
// Parameters:
//   - path: config file path, e.g. "data/app.yaml"
//
// Returns:
//   - *AppConfig: config with defaults applied
//   - error: read, parse or validation failure
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		embeddedData, embErr := embedded.ReadFile(path)
		if embErr != nil {
			return nil, fmt.Errorf("failed to read app config file %s: %w", path, err)
		}
		log.Printf("[Config] %s not found on disk, using embedded copy", path)
		data = embeddedData
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config YAML from %s: %w", path, err)
	}

	applyAppDefaults(&cfg)

	if err := validateAppConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid app config in %s: %w", path, err)
	}

	log.Printf("[Config] Loaded app config %s (content=%s, watch=%v)", path, cfg.ContentPath, cfg.Watch)
	return &cfg, nil
}

func applyAppDefaults(cfg *AppConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = GameWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = GameWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.ContentPath == "" {
		cfg.ContentPath = DefaultContentPath
	}
	if cfg.ResourceConfigPath == "" {
		cfg.ResourceConfigPath = DefaultResourceConfigPath
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = DefaultFontSize
	}
	if cfg.SectionSlots == 0 {
		cfg.SectionSlots = DefaultSectionSlots
	}
	if cfg.Volume == 0 {
		cfg.Volume = DefaultVolume
	}
}

func validateAppConfig(cfg *AppConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Font.Size < 0 {
		return fmt.Errorf("font size must be positive, got %.1f", cfg.Font.Size)
	}
	if cfg.SectionSlots < 0 || cfg.SectionSlots > 12 {
		return fmt.Errorf("sectionSlots must be between 1 and 12, got %d", cfg.SectionSlots)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %.2f", cfg.Volume)
	}
	return nil
}
