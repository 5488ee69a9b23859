// Package config handles pawprint configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/pawprint/internal/motion"
)

// Config represents pawprint configuration.
type Config struct {
	Animation AnimationConfig `toml:"animation"`
	Images    ImagesConfig    `toml:"images"`
	UI        UIConfig        `toml:"ui"`
	Keys      KeysConfig      `toml:"keys"`
	Debug     DebugConfig     `toml:"debug"`
}

// AnimationConfig contains animation timings.
type AnimationConfig struct {
	// Disable to render every transition at its end state
	Enabled bool `toml:"enabled"`

	// Frames per second while something is animating
	FPS int `toml:"fps"`

	// Page fade-in after load
	PageFadeMS int `toml:"page_fade_ms"`

	// Panel transition after a tab switch
	PanelFadeMS int `toml:"panel_fade_ms"`

	// Duration of each item's entrance
	ItemMS int `toml:"item_ms"`

	// Delay added per list position
	StaggerMS int `toml:"stagger_ms"`

	// Spring driving the page title
	TitleStiffness float64 `toml:"title_stiffness"`
	TitleDamping   float64 `toml:"title_damping"`
	TitleMass      float64 `toml:"title_mass"`
}

// ImagesConfig contains settings for breed images.
type ImagesConfig struct {
	// Whether breed cards link to an image
	Enabled bool `toml:"enabled"`

	// Image-by-keyword service; the breed keyword is appended to the query
	ServiceURL string `toml:"service_url"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Widest the page grows to (0 = terminal width)
	MaxWidth int `toml:"max_width"`

	// Show the key help footer
	ShowHelp bool `toml:"show_help"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Breeds string `toml:"breeds"`
	Facts  string `toml:"facts"`
	Care   string `toml:"care"`
	Next   string `toml:"next"`
	Prev   string `toml:"prev"`
	Filter string `toml:"filter"`
	Help   string `toml:"help"`
	Quit   string `toml:"quit"`
}

// DebugConfig contains debug logging settings.
type DebugConfig struct {
	// Write a debug log without passing --debug
	Enabled bool `toml:"enabled"`

	// Log file path (empty = user cache dir)
	LogFile string `toml:"log_file"`
}

// DefaultImageService is the image-by-keyword service used by default.
const DefaultImageService = "https://source.unsplash.com/400x300/"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{
			Enabled:        true,
			FPS:            60,
			PageFadeMS:     1000,
			PanelFadeMS:    500,
			ItemMS:         500,
			StaggerMS:      100,
			TitleStiffness: 100,
			TitleDamping:   10,
			TitleMass:      1,
		},
		Images: ImagesConfig{
			Enabled:    true,
			ServiceURL: DefaultImageService,
		},
		UI: UIConfig{
			Theme:    "auto",
			MaxWidth: 120,
			ShowHelp: true,
		},
		Keys: KeysConfig{
			Breeds: "1,b",
			Facts:  "2,f",
			Care:   "3,c",
			Next:   "tab,right,l",
			Prev:   "shift+tab,left,h",
			Filter: "/",
			Help:   "?",
			Quit:   "q,ctrl+c",
		},
		Debug: DebugConfig{
			Enabled: false,
			LogFile: "",
		},
	}
}

// Timing converts the animation settings into motion timings. Negative
// values count as zero.
func (a AnimationConfig) Timing() motion.Timing {
	return motion.Timing{
		Page:    millis(a.PageFadeMS),
		Panel:   millis(a.PanelFadeMS),
		Item:    millis(a.ItemMS),
		Stagger: millis(a.StaggerMS),
	}
}

func millis(ms int) time.Duration {
	return time.Duration(max(ms, 0)) * time.Millisecond
}

// FrameInterval is the time between animation frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	fps := a.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// ImageService returns the service URL, or "" when images are disabled.
func (c *Config) ImageService() string {
	if !c.Images.Enabled {
		return ""
	}
	return c.Images.ServiceURL
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/pawprint/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pawprint", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "pawprint", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "pawprint", "config.toml")
	}
	return filepath.Join(configDir, "pawprint", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// Shared lock so a concurrent `config init` is never read half-written.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ErrConfigExists is returned when creating a config file over an
// existing one without force.
var ErrConfigExists = errors.New("config file already exists")

// CreateDefaultConfigFile writes a commented default config to path.
func CreateDefaultConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

// writeLocked writes data to path under an exclusive lock, atomically.
func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# pawprint configuration\n\n")

	b.WriteString("[animation]\n")
	b.WriteString("# Set to false to skip all entrance animations\n")
	fmt.Fprintf(&b, "enabled = %v\n", cfg.Animation.Enabled)
	b.WriteString("# Frames per second while animating\n")
	fmt.Fprintf(&b, "fps = %d\n", cfg.Animation.FPS)
	b.WriteString("# Page fade-in after start (milliseconds)\n")
	fmt.Fprintf(&b, "page_fade_ms = %d\n", cfg.Animation.PageFadeMS)
	b.WriteString("# Panel transition after switching tabs\n")
	fmt.Fprintf(&b, "panel_fade_ms = %d\n", cfg.Animation.PanelFadeMS)
	b.WriteString("# Entrance duration of each item\n")
	fmt.Fprintf(&b, "item_ms = %d\n", cfg.Animation.ItemMS)
	b.WriteString("# Delay added per item so lists cascade in\n")
	fmt.Fprintf(&b, "stagger_ms = %d\n", cfg.Animation.StaggerMS)
	b.WriteString("# Title spring\n")
	fmt.Fprintf(&b, "title_stiffness = %.1f\n", cfg.Animation.TitleStiffness)
	fmt.Fprintf(&b, "title_damping = %.1f\n", cfg.Animation.TitleDamping)
	fmt.Fprintf(&b, "title_mass = %.1f\n\n", cfg.Animation.TitleMass)

	b.WriteString("[images]\n")
	b.WriteString("# Link breed cards to a representative image\n")
	fmt.Fprintf(&b, "enabled = %v\n", cfg.Images.Enabled)
	b.WriteString("# The breed keyword is appended to the query string\n")
	fmt.Fprintf(&b, "service_url = %q\n\n", cfg.Images.ServiceURL)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Widest the page grows to (0 = full terminal width)\n")
	fmt.Fprintf(&b, "max_width = %d\n", cfg.UI.MaxWidth)
	b.WriteString("# Show the key help footer\n")
	fmt.Fprintf(&b, "show_help = %v\n\n", cfg.UI.ShowHelp)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# breeds = %q\n", cfg.Keys.Breeds)
	fmt.Fprintf(&b, "# facts = %q\n", cfg.Keys.Facts)
	fmt.Fprintf(&b, "# care = %q\n", cfg.Keys.Care)
	fmt.Fprintf(&b, "# next = %q\n", cfg.Keys.Next)
	fmt.Fprintf(&b, "# prev = %q\n", cfg.Keys.Prev)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("[debug]\n")
	b.WriteString("# Always write a debug log (same as --debug)\n")
	fmt.Fprintf(&b, "enabled = %v\n", cfg.Debug.Enabled)
	b.WriteString("# log_file = \"/tmp/pawprint.log\"\n")

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	a := c.Animation
	if a.Enabled && (a.FPS < 1 || a.FPS > 240) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for animation.fps: %d (expected 1-240)", a.FPS))
	}
	for name, v := range map[string]int{
		"page_fade_ms":  a.PageFadeMS,
		"panel_fade_ms": a.PanelFadeMS,
		"item_ms":       a.ItemMS,
		"stagger_ms":    a.StaggerMS,
	} {
		if v < 0 {
			warnings = append(warnings, fmt.Sprintf("Invalid value for animation.%s: %d (must not be negative)", name, v))
		}
	}
	if a.TitleDamping < 0 || a.TitleMass < 0 {
		warnings = append(warnings, "Title spring parameters must not be negative")
	}
	if a.Enabled && a.TitleStiffness <= 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for animation.title_stiffness: %g (must be positive); the title will not animate", a.TitleStiffness))
	}

	if c.Images.Enabled && c.Images.ServiceURL != "" {
		u, err := url.Parse(c.Images.ServiceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			warnings = append(warnings, fmt.Sprintf("Invalid value for images.service_url: %s (expected an absolute URL); images will show a placeholder", c.Images.ServiceURL))
		}
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	if c.UI.MaxWidth < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.max_width: %d (must not be negative)", c.UI.MaxWidth))
	}

	// Panel keys must not collide with each other.
	owners := make(map[string]string)
	for name, keys := range map[string]string{
		"breeds": c.Keys.Breeds,
		"facts":  c.Keys.Facts,
		"care":   c.Keys.Care,
	} {
		for _, k := range strings.Split(keys, ",") {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if other, ok := owners[k]; ok {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both keys.%s and keys.%s", k, other, name))
				continue
			}
			owners[k] = name
		}
	}

	return warnings
}
