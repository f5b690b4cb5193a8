// Package theme manages the application theme: light, dark, or auto with
// OS dark-mode detection.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/YounesRabeh/go-app-template/internal/config"
)

// Mode is a canonical theme mode.
type Mode string

const (
	ModeLight Mode = "LIGHT"
	ModeDark  Mode = "DARK"
	ModeAuto  Mode = "AUTO"
)

// ParseMode validates and normalizes a theme mode string.
func ParseMode(raw string) (Mode, error) {
	mode, err := config.EnsureThemeMode(raw)
	if err != nil {
		return "", err
	}
	return Mode(mode), nil
}

// Manager applies the configured theme to the running fyne app and
// supports toggling between light and dark.
type Manager struct {
	settings fyne.Settings
	mode     Mode

	// Last system theme seen, used as the toggle base in auto mode.
	lastSystemDark bool

	log zerolog.Logger
}

// NewManager creates a Manager from the configured mode string and applies
// the theme immediately. An unmappable mode falls back to light.
func NewManager(settings fyne.Settings, rawMode string, log zerolog.Logger) *Manager {
	mode, err := ParseMode(rawMode)
	if err != nil {
		log.Error().Str("mode", rawMode).Msg("unmappable theme mode in config, falling back to LIGHT")
		mode = ModeLight
	}

	m := &Manager{
		settings:       settings,
		mode:           mode,
		lastSystemDark: systemDarkMode(log),
		log:            log,
	}
	m.Apply()
	return m
}

// Mode returns the canonical mode (which may be auto).
func (m *Manager) Mode() Mode {
	return m.mode
}

// Effective resolves auto against the detected system theme.
func (m *Manager) Effective() Mode {
	if m.mode != ModeAuto {
		return m.mode
	}
	if m.lastSystemDark {
		return ModeDark
	}
	return ModeLight
}

// Apply installs the effective theme variant into the app settings.
func (m *Manager) Apply() {
	variant := fynetheme.VariantLight
	if m.Effective() == ModeDark {
		variant = fynetheme.VariantDark
	}

	m.settings.SetTheme(&forcedVariantTheme{
		Theme:   fynetheme.DefaultTheme(),
		variant: variant,
	})
	m.log.Debug().Str("mode", string(m.mode)).Str("effective", string(m.Effective())).Msg("theme applied")
}

// Toggle switches between light and dark. In auto mode the detected
// system theme is the base for the flip, and the mode becomes canonical.
func (m *Manager) Toggle() {
	if m.Effective() == ModeDark {
		m.mode = ModeLight
	} else {
		m.mode = ModeDark
	}
	m.Apply()
}

// Set switches to an explicit mode. Auto refreshes the system detection.
func (m *Manager) Set(mode Mode) {
	if mode == ModeAuto {
		m.lastSystemDark = systemDarkMode(m.log)
	}
	m.mode = mode
	m.Apply()
}

// forcedVariantTheme pins the default theme to one variant regardless of
// the desktop's preference.
type forcedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *forcedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
