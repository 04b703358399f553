package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/javanhut/RavenEditor/src/dock"
)

// DockConfig holds the docking geometry, in pixels
type DockConfig struct {
	Gutter          float32 `toml:"gutter"`
	HandleThickness float32 `toml:"handle_thickness"`
	MinPanelSize    float32 `toml:"min_panel_size"`
	TabHeight       float32 `toml:"tab_height"`
	TabPadding      float32 `toml:"tab_padding"`
	TabMinWidth     float32 `toml:"tab_min_width"`
	// Drag thresholds for tearing a tab off its header
	DragThresholdX float32 `toml:"drag_threshold_x"`
	DragThresholdY float32 `toml:"drag_threshold_y"`
}

// ConsoleConfig holds settings of the console panel
type ConsoleConfig struct {
	// Path to shell binary (empty = $SHELL, then /bin/sh)
	Shell string `toml:"shell"`
	// Scrollback is the number of lines kept by the console panel
	Scrollback int `toml:"scrollback"`
	// Env extra environment variables
	Env map[string]string `toml:"env"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
	// Capacity is the number of records kept for the log panel
	Capacity int `toml:"capacity"`
}

// Config holds the editor configuration
type Config struct {
	Theme     string        `toml:"theme"`
	Font      string        `toml:"font"`
	FontSize  float32       `toml:"font_size"`
	AssetRoot string        `toml:"asset_root"`
	Dock      DockConfig    `toml:"dock"`
	Console   ConsoleConfig `toml:"console"`
	Log       LogConfig     `toml:"log"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	s := dock.DefaultStyle()
	return &Config{
		Theme:     "raven-blue",
		Font:      "gomono",
		FontSize:  14.0,
		AssetRoot: "assets",
		Dock: DockConfig{
			Gutter:          s.Gutter,
			HandleThickness: s.HandleThickness,
			MinPanelSize:    s.MinPanelSize,
			TabHeight:       s.TabHeight,
			TabPadding:      s.TabPadding,
			TabMinWidth:     s.TabMinWidth,
			DragThresholdX:  s.DragThresholdX,
			DragThresholdY:  s.DragThresholdY,
		},
		Console: ConsoleConfig{
			Shell:      "",
			Scrollback: 2000,
			Env:        map[string]string{},
		},
		Log: LogConfig{
			Level:    "info",
			Capacity: 1000,
		},
	}
}

// Style converts the dock section into a dock style. charWidth is the advance
// of the tab title font, which only the renderer knows.
func (c *Config) Style(charWidth float32) dock.Style {
	s := dock.DefaultStyle()
	d := c.Dock
	s.Gutter = d.Gutter
	s.HandleThickness = d.HandleThickness
	s.MinPanelSize = d.MinPanelSize
	s.TabHeight = d.TabHeight
	s.TabPadding = d.TabPadding
	s.TabMinWidth = d.TabMinWidth
	s.DragThresholdX = d.DragThresholdX
	s.DragThresholdY = d.DragThresholdY
	if charWidth > 0 {
		s.CharWidth = charWidth
	}
	return s
}

// LogLevel parses Log.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Validate rejects values the editor cannot run with
func (c *Config) Validate() error {
	d := c.Dock
	switch {
	case c.FontSize <= 0:
		return fmt.Errorf("font_size must be positive, got %v", c.FontSize)
	case d.Gutter < 0:
		return fmt.Errorf("dock.gutter must not be negative, got %v", d.Gutter)
	case d.TabHeight <= 0:
		return fmt.Errorf("dock.tab_height must be positive, got %v", d.TabHeight)
	case d.MinPanelSize < 0:
		return fmt.Errorf("dock.min_panel_size must not be negative, got %v", d.MinPanelSize)
	case d.DragThresholdX < 0 || d.DragThresholdY < 0:
		return fmt.Errorf("dock drag thresholds must not be negative")
	case c.Console.Scrollback < 0:
		return fmt.Errorf("console.scrollback must not be negative, got %d", c.Console.Scrollback)
	}
	return nil
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".config/raven-editor"
	}
	return filepath.Join(homeDir, ".config", "raven-editor")
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// Load loads the configuration from disk
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads the configuration at path, writing the defaults there first
// if no file exists yet. Keys missing from the file keep their default.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(configPath); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the configuration to configPath
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
