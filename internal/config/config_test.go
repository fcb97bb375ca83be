package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riordanpawley/toaster/internal/ui/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test toast defaults
	assert.Equal(t, 250, cfg.Toast.AnimationMs)
	assert.Equal(t, 4000, cfg.Toast.DisplayMs)
	assert.Equal(t, 60, cfg.Toast.FrameRate)
	assert.Equal(t, "queue", cfg.Toast.EarlyDismiss)

	// Test layout defaults
	assert.Equal(t, 2, cfg.Layout.HorizontalPadding)
	assert.Equal(t, 1, cfg.Layout.VerticalPadding)
	assert.Equal(t, 0, cfg.Layout.TextSpacing)
	assert.Equal(t, 4, cfg.Layout.HorizontalMargin)
	assert.Equal(t, 2, cfg.Layout.BottomMargin)

	// Test keys defaults
	assert.Equal(t, []string{"shift+down"}, cfg.Keys.Dismiss)
	assert.Equal(t, []string{"ctrl+t"}, cfg.Keys.Action)
	assert.Equal(t, []string{"ctrl+c"}, cfg.Keys.Quit)

	// Test demo defaults
	assert.Equal(t, "Title", cfg.Demo.Title)
	assert.Equal(t, "message goes here", cfg.Demo.Message)
	assert.Equal(t, "button", cfg.Demo.Button)
	assert.True(t, cfg.Demo.ShowIcon)
	assert.False(t, cfg.Demo.DynamicWidth)

	// Test log defaults
	assert.NotEmpty(t, cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "toast": {
    "displayMs": 1500,
    "earlyDismiss": "drop"
  },
  "layout": {
    "bottomMargin": 5
  },
  "demo": {
    "title": "",
    "showIcon": false
  },
  "log": {
    "level": "debug"
  }
}`
	err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 1500, cfg.Toast.DisplayMs)
	assert.Equal(t, "drop", cfg.Toast.EarlyDismiss)
	assert.Equal(t, 5, cfg.Layout.BottomMargin)
	assert.Equal(t, "", cfg.Demo.Title, "empty title means no title")
	assert.False(t, cfg.Demo.ShowIcon)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Defaults kept
	assert.Equal(t, 250, cfg.Toast.AnimationMs)
	assert.Equal(t, 2, cfg.Layout.HorizontalPadding)
	assert.Equal(t, "button", cfg.Demo.Button)
	assert.Equal(t, []string{"ctrl+t"}, cfg.Keys.Action)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"toast": `},
		{"unknown early dismiss", `{"toast": {"earlyDismiss": "later"}}`},
		{"unknown log level", `{"log": {"level": "chatty"}}`},
		{"negative duration", `{"toast": {"displayMs": -1}}`},
		{"frame rate too high", `{"toast": {"frameRate": 1000}}`},
		{"negative padding", `{"layout": {"horizontalPadding": -2}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadFile(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := MergeWithDefaults(&Config{})

	assert.Equal(t, 250, cfg.Toast.AnimationMs)
	assert.Equal(t, "queue", cfg.Toast.EarlyDismiss)
	assert.Equal(t, 4, cfg.Layout.HorizontalMargin)
	assert.Equal(t, []string{"shift+down"}, cfg.Keys.Dismiss)
	assert.Equal(t, "🔔", cfg.Demo.Icon)
	assert.Equal(t, "", cfg.Demo.Message, "demo text is left to the form")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Toast.DisplayMs = 2500
	cfg.Demo.DynamicWidth = true

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Conversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toast.AnimationMs = 100
	cfg.Toast.DisplayMs = 2000
	cfg.Toast.EarlyDismiss = "drop"
	cfg.Layout.CornerRadius = 0
	cfg.Log.Level = "warn"

	assert.Equal(t, toast.Metrics{
		HorizontalPadding: 2,
		VerticalPadding:   1,
		TextSpacing:       0,
		HorizontalMargin:  4,
		BottomMargin:      2,
	}, cfg.Metrics())

	timing := cfg.Timing()
	assert.Equal(t, 100*time.Millisecond, timing.AnimationDuration)
	assert.Equal(t, 2*time.Second, timing.DisplayDuration)
	assert.NotNil(t, timing.Curve)

	assert.Equal(t, toast.EarlyDismissDrop, cfg.EarlyDismiss())
	assert.Equal(t, 0, cfg.Appearance().CornerRadius)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}
