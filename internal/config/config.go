// Package config handles plant-haiku configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/plant-haiku/internal/host"
	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// Config represents plant-haiku configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Widget  WidgetConfig  `toml:"widget"`
	UI      UIConfig      `toml:"ui"`
	Debug   DebugConfig   `toml:"debug"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Name the host re-runs when the panel is tapped (empty = not tappable)
	ScriptName string `toml:"script_name"`

	// Scheme of the re-invocation reference
	URLScheme string `toml:"url_scheme"`
}

// WidgetConfig contains settings for widget mode.
type WidgetConfig struct {
	// File the widget panel is written to (empty = user cache dir)
	Path string `toml:"path"`

	// Refresh the tmux status line after writing the widget
	NotifyMultiplexer bool `toml:"notify_multiplexer"`
}

// UIConfig contains panel colours as #rrggbb strings.
type UIConfig struct {
	GradientTop    string `toml:"gradient_top"`
	GradientBottom string `toml:"gradient_bottom"`
	TitleColor     string `toml:"title_color"`
	BodyColor      string `toml:"body_color"`
	FooterColor    string `toml:"footer_color"`
}

// DebugConfig contains diagnostics settings.
type DebugConfig struct {
	// Debug log file (empty = user cache dir)
	LogPath string `toml:"log_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			ScriptName: "plant-haiku",
			URLScheme:  "haiku",
		},
		Widget: WidgetConfig{
			Path:              "",
			NotifyMultiplexer: true,
		},
		UI: UIConfig{
			GradientTop:    ui.DefaultGradientTop,
			GradientBottom: ui.DefaultGradientBottom,
			TitleColor:     ui.DefaultTitleColor,
			BodyColor:      ui.DefaultBodyColor,
			FooterColor:    ui.DefaultFooterColor,
		},
		Debug: DebugConfig{
			LogPath: "",
		},
	}
}

// Theme returns the panel theme described by the UI section.
func (c *Config) Theme() ui.Theme {
	return ui.Theme{
		GradientTop:    c.UI.GradientTop,
		GradientBottom: c.UI.GradientBottom,
		Title:          c.UI.TitleColor,
		Body:           c.UI.BodyColor,
		Footer:         c.UI.FooterColor,
	}
}

// DebugLogPath returns the configured debug log path or the default one.
func (c *Config) DebugLogPath() string {
	if c.Debug.LogPath != "" {
		return c.Debug.LogPath
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "plant-haiku", "debug.log")
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/plant-haiku/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "plant-haiku", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "plant-haiku", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "plant-haiku", "config.toml")
	}
	return filepath.Join(configDir, "plant-haiku", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// CreateDefaultConfigFile writes a commented default config file to path.
func CreateDefaultConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# plant-haiku configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Name re-run when the panel is tapped. Leave empty to disable tapping.\n")
	fmt.Fprintf(&b, "script_name = %q\n", cfg.General.ScriptName)
	b.WriteString("# Scheme of the re-invocation reference (scheme:///run/<name>)\n")
	fmt.Fprintf(&b, "url_scheme = %q\n\n", cfg.General.URLScheme)

	b.WriteString("[widget]\n")
	b.WriteString("# File the widget panel is written to (defaults to the user cache dir)\n")
	b.WriteString("# path = \"~/.cache/plant-haiku/widget.txt\"\n")
	b.WriteString("# Refresh the tmux status line after writing the widget\n")
	fmt.Fprintf(&b, "notify_multiplexer = %v\n\n", cfg.Widget.NotifyMultiplexer)

	b.WriteString("[ui]\n")
	b.WriteString("# Panel colours (#rrggbb)\n")
	fmt.Fprintf(&b, "gradient_top = %q\n", cfg.UI.GradientTop)
	fmt.Fprintf(&b, "gradient_bottom = %q\n", cfg.UI.GradientBottom)
	fmt.Fprintf(&b, "title_color = %q\n", cfg.UI.TitleColor)
	fmt.Fprintf(&b, "body_color = %q\n", cfg.UI.BodyColor)
	fmt.Fprintf(&b, "footer_color = %q\n\n", cfg.UI.FooterColor)

	b.WriteString("[debug]\n")
	b.WriteString("# Debug log file, written when running with --debug\n")
	b.WriteString("# log_path = \"/tmp/plant-haiku.log\"\n")

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.General.URLScheme != "" && !host.ValidScheme(c.General.URLScheme) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.url_scheme: %s (using %s)", c.General.URLScheme, host.DefaultScheme))
	}

	colors := []struct {
		key   string
		value string
	}{
		{"ui.gradient_top", c.UI.GradientTop},
		{"ui.gradient_bottom", c.UI.GradientBottom},
		{"ui.title_color", c.UI.TitleColor},
		{"ui.body_color", c.UI.BodyColor},
		{"ui.footer_color", c.UI.FooterColor},
	}
	for _, color := range colors {
		if color.value != "" && !ui.ValidColor(color.value) {
			warnings = append(warnings, fmt.Sprintf("Invalid value for %s: %s (expected #rrggbb)", color.key, color.value))
		}
	}

	return warnings
}
