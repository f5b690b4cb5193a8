package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YounesRabeh/go-app-template/internal/config"
)

func testResourcesConfig(t *testing.T) config.ResourcesConfig {
	t.Helper()
	base := filepath.Join(t.TempDir(), "resources")

	// Category folders laid out the way config.Load derives them.
	cfg := config.ResourcesConfig{
		Base:   base,
		Styles: filepath.Join(base, "styles"),
		Icons:  filepath.Join(base, "icons"),
		Images: filepath.Join(base, "images"),
		Fonts:  filepath.Join(base, "fonts"),
		Data:   filepath.Join(base, "data"),
		Temp:   filepath.Join(base, "temp"),
	}

	require.NoError(t, os.MkdirAll(cfg.Icons, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Icons, "app.png"), []byte("png"), 0o644))
	return cfg
}

func TestNewLocatorIndexesFolders(t *testing.T) {
	cfg := testResourcesConfig(t)

	loc, err := NewLocator(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, loc.All("icons"), 1)
	assert.Empty(t, loc.All("fonts"))
	assert.DirExists(t, loc.Dir("temp"))
	assert.Equal(t, []string{"data", "fonts", "icons", "images", "styles", "temp"}, loc.Categories())
}

func TestPath(t *testing.T) {
	cfg := testResourcesConfig(t)
	loc, err := NewLocator(cfg, zerolog.Nop())
	require.NoError(t, err)

	path, err := loc.Path("icons", "app.png")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = loc.Path("icons", "missing.png")
	assert.Error(t, err)

	_, err = loc.Path("sounds", "beep.wav")
	assert.Error(t, err)
}

func TestTempPath(t *testing.T) {
	cfg := testResourcesConfig(t)
	loc, err := NewLocator(cfg, zerolog.Nop())
	require.NoError(t, err)

	path := loc.TempPath("scratch.txt")
	assert.Equal(t, loc.Dir("temp"), filepath.Dir(path))
}
