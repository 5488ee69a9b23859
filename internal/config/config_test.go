package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Animation.Enabled)
	assert.Equal(t, DefaultImageService, cfg.Images.ServiceURL)
	assert.Equal(t, "auto", cfg.UI.Theme)

	timing := cfg.Animation.Timing()
	assert.Equal(t, time.Second, timing.Page)
	assert.Equal(t, 500*time.Millisecond, timing.Panel)
	assert.Equal(t, 500*time.Millisecond, timing.Item)
	assert.Equal(t, 100*time.Millisecond, timing.Stagger)
}

func TestTimingClampsNegative(t *testing.T) {
	a := DefaultConfig().Animation
	a.StaggerMS = -100
	a.ItemMS = -1

	timing := a.Timing()
	assert.Equal(t, time.Duration(0), timing.Stagger)
	assert.Equal(t, time.Duration(0), timing.Item)
	assert.Equal(t, time.Second, timing.Page)
}

func TestFrameInterval(t *testing.T) {
	a := AnimationConfig{FPS: 50}
	assert.Equal(t, 20*time.Millisecond, a.FrameInterval())

	a.FPS = 0
	assert.Equal(t, time.Second/60, a.FrameInterval())
}

func TestImageService(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultImageService, cfg.ImageService())

	cfg.Images.Enabled = false
	assert.Equal(t, "", cfg.ImageService())
}

func withAnimation(edit func(*AnimationConfig)) *Config {
	cfg := DefaultConfig()
	edit(&cfg.Animation)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name:        "zero config is valid",
			config:      &Config{},
			wantWarning: false,
		},
		{
			name:        "invalid theme",
			config:      &Config{UI: UIConfig{Theme: "neon"}},
			wantWarning: true,
		},
		{
			name:        "negative stagger",
			config:      &Config{Animation: AnimationConfig{StaggerMS: -1}},
			wantWarning: true,
		},
		{
			name:        "absurd fps",
			config:      withAnimation(func(a *AnimationConfig) { a.FPS = 1000 }),
			wantWarning: true,
		},
		{
			name:        "zero fps",
			config:      withAnimation(func(a *AnimationConfig) { a.FPS = 0 }),
			wantWarning: true,
		},
		{
			name:        "zero title stiffness",
			config:      withAnimation(func(a *AnimationConfig) { a.TitleStiffness = 0 }),
			wantWarning: true,
		},
		{
			name: "spring and fps ignored without animation",
			config: withAnimation(func(a *AnimationConfig) {
				a.Enabled = false
				a.FPS = 0
				a.TitleStiffness = 0
			}),
			wantWarning: false,
		},
		{
			name:        "relative image service",
			config:      &Config{Images: ImagesConfig{Enabled: true, ServiceURL: "images/"}},
			wantWarning: true,
		},
		{
			name:        "disabled images ignore service url",
			config:      &Config{Images: ImagesConfig{Enabled: false, ServiceURL: "images/"}},
			wantWarning: false,
		},
		{
			name:        "panel keys collide",
			config:      &Config{Keys: KeysConfig{Breeds: "1,x", Facts: "2,x"}},
			wantWarning: true,
		},
		{
			name:        "negative max width",
			config:      &Config{UI: UIConfig{MaxWidth: -5}},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			assert.Equal(t, tt.wantWarning, len(warnings) > 0, "warnings: %v", warnings)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPreservesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[animation]
stagger_ms = 250

[ui]
theme = "dark"
`
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContent), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Animation.StaggerMS)
	assert.Equal(t, "dark", cfg.UI.Theme)

	assert.Equal(t, 500, cfg.Animation.ItemMS)
	// Boolean defaults survive when not specified.
	assert.True(t, cfg.Animation.Enabled)
	assert.True(t, cfg.Images.Enabled)
	assert.True(t, cfg.UI.ShowHelp)
}

func TestLoadRejectsBadToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[ui\ntheme ="), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
}

func TestCreateDefaultConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pawprint", "config.toml")

	require.NoError(t, CreateDefaultConfigFile(configPath, false))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "the generated file must round-trip to the defaults")

	err = CreateDefaultConfigFile(configPath, false)
	assert.True(t, errors.Is(err, ErrConfigExists))

	assert.NoError(t, CreateDefaultConfigFile(configPath, true))

	_, err = os.Stat(configPath + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "pawprint", "config.toml"), ConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".config", "pawprint", "config.toml"), ConfigPath())
}
