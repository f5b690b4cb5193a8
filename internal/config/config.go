// Package config loads the application configuration from config.toml,
// merged with .env overrides when running from source.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultPath is the configuration file looked up in the working
	// directory at startup.
	DefaultPath = "config.toml"

	// BundleMarker is written next to the executable by the bundler.
	// Its presence switches the app out of development mode.
	BundleMarker = ".bundled"
)

// Config holds the full application configuration.
type Config struct {
	App       AppConfig       `toml:"app"`
	Window    WindowConfig    `toml:"window"`
	Logging   LoggingConfig   `toml:"logging"`
	Resources ResourcesConfig `toml:"resources"`

	// DevMode is true when running from source rather than a bundle.
	DevMode bool `toml:"-"`
}

// AppConfig identifies the application being templated.
type AppConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// WindowConfig defines main-window geometry and theming.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	MinWidth  int    `toml:"min_width"`
	MinHeight int    `toml:"min_height"`
	ThemeMode string `toml:"theme_mode"`
}

// LoggingConfig controls log level, console output and file persistence.
type LoggingConfig struct {
	Level       string `toml:"level"`
	Console     bool   `toml:"console"`
	Persistence bool   `toml:"persistence"`
}

// ResourcesConfig names the resource folders shipped with the app. Empty
// entries default to subfolders of Base.
type ResourcesConfig struct {
	Base   string `toml:"base"`
	Styles string `toml:"styles"`
	Icons  string `toml:"icons"`
	Images string `toml:"images"`
	Fonts  string `toml:"fonts"`
	Data   string `toml:"data"`
	Temp   string `toml:"temp"`
}

// DefaultConfig returns the configuration used when config.toml is absent.
func DefaultConfig() *Config {
	cfg := baseConfig()
	cfg.Resources.applyDefaults()
	return cfg
}

// baseConfig holds the defaults with resource subfolders still unset, so
// a configured base can derive them after the file is read.
func baseConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "go-app-template",
			Version: "0.0.0",
		},
		Window: WindowConfig{
			Title:     "<App Title>",
			Width:     800,
			Height:    500,
			MinWidth:  400,
			MinHeight: 300,
			ThemeMode: "AUTO",
		},
		Logging: LoggingConfig{
			Level:       "INFO",
			Console:     true,
			Persistence: false,
		},
		Resources: ResourcesConfig{
			Base: "resources",
		},
	}
}

// Load reads the configuration file at path, applies defaults for anything
// unset and, in development mode, merges overrides from .env and the
// process environment. A missing file is a warning, not an error: the app
// proceeds with defaults.
func Load(path string, log zerolog.Logger) (*Config, error) {
	cfg := baseConfig()
	cfg.DevMode = detectDevMode()

	if _, err := os.Stat(path); err != nil {
		log.Warn().Str("path", path).Msg("configuration file not found, using defaults")
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	if cfg.DevMode {
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg(".env not found, skipping")
		}
		cfg.applyEnv(log)
	}

	cfg.Resources.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectDevMode reports whether the app runs from source. A bundled app
// carries the marker file next to its executable.
func detectDevMode() bool {
	exe, err := os.Executable()
	if err != nil {
		return true
	}
	_, err = os.Stat(filepath.Join(filepath.Dir(exe), BundleMarker))
	return err != nil
}

// applyDefaults fills empty resource folders with subfolders of Base.
func (r *ResourcesConfig) applyDefaults() {
	if r.Base == "" {
		r.Base = "resources"
	}
	fill := func(dst *string, name string) {
		if *dst == "" {
			*dst = filepath.Join(r.Base, name)
		}
	}
	fill(&r.Styles, "styles")
	fill(&r.Icons, "icons")
	fill(&r.Images, "images")
	fill(&r.Fonts, "fonts")
	fill(&r.Data, "data")
	fill(&r.Temp, "temp")
}

// Folders returns the named resource folders keyed by category, excluding
// the temp folder which never ships in a bundle.
func (r *ResourcesConfig) Folders() map[string]string {
	return map[string]string{
		"styles": r.Styles,
		"icons":  r.Icons,
		"images": r.Images,
		"fonts":  r.Fonts,
		"data":   r.Data,
	}
}

// applyEnv merges SECTION_KEY environment overrides into the config,
// mirroring the flattened key scheme of the template's .env file. Invalid
// values are logged and ignored so a bad override never breaks startup.
func (c *Config) applyEnv(log zerolog.Logger) {
	warn := func(key, raw string, err error) {
		log.Warn().Str("key", key).Str("value", raw).Err(err).Msg("ignoring invalid override")
	}

	setString := func(key string, dst *string) {
		if raw, ok := os.LookupEnv(key); ok && raw != "" {
			*dst = raw
		}
	}
	setInt := func(key string, dst *int) {
		if raw, ok := os.LookupEnv(key); ok {
			v, err := EnsurePositiveInt(raw)
			if err != nil {
				warn(key, raw, err)
				return
			}
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if raw, ok := os.LookupEnv(key); ok {
			v, err := EnsureBool(raw)
			if err != nil {
				warn(key, raw, err)
				return
			}
			*dst = v
		}
	}

	setString("APP_NAME", &c.App.Name)
	setString("APP_VERSION", &c.App.Version)
	setString("WINDOW_TITLE", &c.Window.Title)
	setInt("WINDOW_WIDTH", &c.Window.Width)
	setInt("WINDOW_HEIGHT", &c.Window.Height)
	setInt("WINDOW_MIN_WIDTH", &c.Window.MinWidth)
	setInt("WINDOW_MIN_HEIGHT", &c.Window.MinHeight)
	setString("WINDOW_THEME_MODE", &c.Window.ThemeMode)
	setString("LOGGING_LEVEL", &c.Logging.Level)
	setBool("LOGGING_CONSOLE", &c.Logging.Console)
	setBool("LOGGING_PERSISTENCE", &c.Logging.Persistence)

	// Moving the base relocates every derived folder with it.
	if raw, ok := os.LookupEnv("RESOURCES_BASE"); ok && raw != "" {
		c.Resources = ResourcesConfig{Base: raw}
	}
}

// validate checks the merged configuration for values that have no safe
// fallback at a later stage.
func (c *Config) validate() error {
	if _, err := EnsureLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Window.Width < c.Window.MinWidth || c.Window.Height < c.Window.MinHeight {
		return fmt.Errorf("window size %dx%d below minimum %dx%d",
			c.Window.Width, c.Window.Height, c.Window.MinWidth, c.Window.MinHeight)
	}
	if strings.TrimSpace(c.App.Name) == "" {
		return fmt.Errorf("app.name cannot be empty")
	}
	return nil
}
