package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/toaster/internal/ui/toast"
)

// FileName is the config file looked up in the working directory
const FileName = ".toaster.json"

// Config represents the full Toaster configuration
type Config struct {
	Toast  ToastConfig  `json:"toast"`
	Layout LayoutConfig `json:"layout"`
	Keys   KeysConfig   `json:"keys"`
	Demo   DemoConfig   `json:"demo"`
	Log    LogConfig    `json:"log"`
}

// ToastConfig contains toast timing settings
type ToastConfig struct {
	AnimationMs  int    `json:"animationMs"`
	DisplayMs    int    `json:"displayMs"`
	FrameRate    int    `json:"frameRate"`
	EarlyDismiss string `json:"earlyDismiss"`
}

// LayoutConfig contains toast spacing in terminal cells
type LayoutConfig struct {
	HorizontalPadding int `json:"horizontalPadding"`
	VerticalPadding   int `json:"verticalPadding"`
	TextSpacing       int `json:"textSpacing"`
	HorizontalMargin  int `json:"horizontalMargin"`
	BottomMargin      int `json:"bottomMargin"`
	CornerRadius      int `json:"cornerRadius"`
}

// KeysConfig contains key bindings, using bubbletea key names
type KeysConfig struct {
	Dismiss []string `json:"dismiss"`
	Action  []string `json:"action"`
	Quit    []string `json:"quit"`
}

// DemoConfig contains the initial values of the demo form.
// Empty title and button are meaningful and are not replaced by defaults.
type DemoConfig struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	Button       string `json:"button"`
	Icon         string `json:"icon"`
	ShowIcon     bool   `json:"showIcon"`
	DynamicWidth bool   `json:"dynamicWidth"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Toast: ToastConfig{
			AnimationMs:  250,
			DisplayMs:    4000,
			FrameRate:    60,
			EarlyDismiss: "queue",
		},
		Layout: LayoutConfig{
			HorizontalPadding: 2,
			VerticalPadding:   1,
			TextSpacing:       0,
			HorizontalMargin:  4,
			BottomMargin:      2,
			CornerRadius:      1,
		},
		Keys: KeysConfig{
			Dismiss: []string{"shift+down"},
			Action:  []string{"ctrl+t"},
			Quit:    []string{"ctrl+c"},
		},
		Demo: DemoConfig{
			Title:        "Title",
			Message:      "message goes here",
			Button:       "button",
			Icon:         "🔔",
			ShowIcon:     true,
			DynamicWidth: false,
		},
		Log: LogConfig{
			Path:  filepath.Join(os.TempDir(), "toaster.log"),
			Level: "info",
		},
	}
}

// LoadConfig loads .toaster.json from dir, falling back to defaults when the
// file does not exist
func LoadConfig(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads and validates the config at path. Fields missing from the
// file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as indented JSON
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Toast config
	if cfg.Toast.AnimationMs == 0 {
		cfg.Toast.AnimationMs = defaults.Toast.AnimationMs
	}
	if cfg.Toast.DisplayMs == 0 {
		cfg.Toast.DisplayMs = defaults.Toast.DisplayMs
	}
	if cfg.Toast.FrameRate == 0 {
		cfg.Toast.FrameRate = defaults.Toast.FrameRate
	}
	if cfg.Toast.EarlyDismiss == "" {
		cfg.Toast.EarlyDismiss = defaults.Toast.EarlyDismiss
	}

	// Merge Layout config
	if cfg.Layout.HorizontalPadding == 0 {
		cfg.Layout.HorizontalPadding = defaults.Layout.HorizontalPadding
	}
	if cfg.Layout.VerticalPadding == 0 {
		cfg.Layout.VerticalPadding = defaults.Layout.VerticalPadding
	}
	if cfg.Layout.HorizontalMargin == 0 {
		cfg.Layout.HorizontalMargin = defaults.Layout.HorizontalMargin
	}
	if cfg.Layout.BottomMargin == 0 {
		cfg.Layout.BottomMargin = defaults.Layout.BottomMargin
	}

	// Merge Keys config
	if len(cfg.Keys.Dismiss) == 0 {
		cfg.Keys.Dismiss = defaults.Keys.Dismiss
	}
	if len(cfg.Keys.Action) == 0 {
		cfg.Keys.Action = defaults.Keys.Action
	}
	if len(cfg.Keys.Quit) == 0 {
		cfg.Keys.Quit = defaults.Keys.Quit
	}

	// Merge Demo config
	if cfg.Demo.Icon == "" {
		cfg.Demo.Icon = defaults.Demo.Icon
	}

	// Merge Log config
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Validate rejects values the program cannot use
func (c *Config) Validate() error {
	if c.Toast.AnimationMs < 0 || c.Toast.DisplayMs < 0 {
		return fmt.Errorf("toast durations must not be negative")
	}
	if c.Toast.FrameRate < 1 || c.Toast.FrameRate > 240 {
		return fmt.Errorf("toast.frameRate %d out of range 1-240", c.Toast.FrameRate)
	}
	if _, err := parseEarlyDismiss(c.Toast.EarlyDismiss); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	l := c.Layout
	for name, v := range map[string]int{
		"horizontalPadding": l.HorizontalPadding,
		"verticalPadding":   l.VerticalPadding,
		"textSpacing":       l.TextSpacing,
		"horizontalMargin":  l.HorizontalMargin,
		"bottomMargin":      l.BottomMargin,
		"cornerRadius":      l.CornerRadius,
	} {
		if v < 0 {
			return fmt.Errorf("layout.%s must not be negative", name)
		}
	}

	return nil
}

// Metrics converts the layout section into toast metrics
func (c *Config) Metrics() toast.Metrics {
	return toast.Metrics{
		HorizontalPadding: c.Layout.HorizontalPadding,
		VerticalPadding:   c.Layout.VerticalPadding,
		TextSpacing:       c.Layout.TextSpacing,
		HorizontalMargin:  c.Layout.HorizontalMargin,
		BottomMargin:      c.Layout.BottomMargin,
	}
}

// Timing converts the toast section into toast timing
func (c *Config) Timing() toast.Timing {
	t := toast.DefaultTiming()
	t.AnimationDuration = time.Duration(c.Toast.AnimationMs) * time.Millisecond
	t.DisplayDuration = time.Duration(c.Toast.DisplayMs) * time.Millisecond
	return t
}

// Appearance returns the default toast appearance with the configured corner radius
func (c *Config) Appearance() toast.Appearance {
	a := toast.DefaultAppearance()
	a.CornerRadius = c.Layout.CornerRadius
	return a
}

// EarlyDismiss returns the configured early dismiss policy
func (c *Config) EarlyDismiss() toast.EarlyDismissPolicy {
	p, _ := parseEarlyDismiss(c.Toast.EarlyDismiss)
	return p
}

// LogLevel returns the configured slog level
func (c *Config) LogLevel() slog.Level {
	l, _ := parseLevel(c.Log.Level)
	return l
}

func parseEarlyDismiss(s string) (toast.EarlyDismissPolicy, error) {
	switch s {
	case "queue", "":
		return toast.EarlyDismissQueue, nil
	case "drop":
		return toast.EarlyDismissDrop, nil
	default:
		return toast.EarlyDismissQueue, fmt.Errorf("unknown toast.earlyDismiss %q (want queue or drop)", s)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log.level %q: %w", s, err)
	}
	return l, nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
