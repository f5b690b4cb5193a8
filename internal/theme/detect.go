package theme

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// systemDarkMode asks the desktop environment whether it prefers a dark
// theme. Detection failures are advisory and resolve to light.
func systemDarkMode(log zerolog.Logger) bool {
	switch runtime.GOOS {
	case "darwin":
		return darwinDark()
	case "windows":
		return windowsDark(log)
	case "linux":
		return gtkDark() || kdeDark()
	}
	return false
}

func darwinDark() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// The key is absent entirely in light mode.
		return false
	}
	return strings.Contains(string(out), "Dark")
}

func windowsDark(log zerolog.Logger) bool {
	out, err := exec.Command("reg", "query",
		`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
		"/v", "AppsUseLightTheme").Output()
	if err != nil {
		log.Warn().Err(err).Msg("Windows theme detection failed")
		return false
	}
	return strings.Contains(string(out), "0x0")
}

func gtkDark() bool {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(out)), "dark")
}

func kdeDark() bool {
	out, err := exec.Command("kreadconfig5", "--group", "General", "--key", "ColorScheme").Output()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(out)), "dark")
}
