package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YounesRabeh/go-app-template/internal/config"
)

func projectWithResources(t *testing.T) (string, *config.Config) {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultPath), []byte("[app]\nname = \"demo\"\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resources", "icons"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resources", "data"), 0o755))

	cfg := config.DefaultConfig()
	cfg.App.Name = "demo"
	return root, cfg
}

func TestBuildCollectsExistingEntries(t *testing.T) {
	root, cfg := projectWithResources(t)

	m := Build(cfg, root, []string{"container", "widget"}, zerolog.Nop())

	assert.Equal(t, "demo", m.AppName)
	assert.Equal(t, []string{"container", "widget"}, m.HiddenImports)

	dests := make([]string, 0, len(m.DataFiles))
	for _, f := range m.DataFiles {
		dests = append(dests, f.Dest)
	}
	// Config file plus the two folders that exist; fonts, images and
	// styles are missing and must be skipped.
	assert.Equal(t, []string{".", filepath.Join("resources", "data"), filepath.Join("resources", "icons")}, dests)
}

func TestBuildEmptyProject(t *testing.T) {
	m := Build(config.DefaultConfig(), t.TempDir(), nil, zerolog.Nop())

	assert.Empty(t, m.DataFiles)
	assert.NotNil(t, m.HiddenImports)
	assert.Empty(t, m.HiddenImports)
}

func TestWriteAndLoad(t *testing.T) {
	root, cfg := projectWithResources(t)
	m := Build(cfg, root, []string{"widget"}, zerolog.Nop())

	path := filepath.Join(root, FileName)
	require.NoError(t, m.WriteFile(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.AppName, got.AppName)
	assert.Equal(t, m.HiddenImports, got.HiddenImports)
	assert.Len(t, got.DataFiles, len(m.DataFiles))
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("\tnot yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTreeRenderer(t *testing.T) {
	m := &Manifest{
		AppName:       "demo",
		DataFiles:     []DataFile{{Source: "/p/config.toml", Dest: "."}},
		HiddenImports: []string{"container", "widget"},
	}

	out := (&TreeRenderer{}).Render(m)
	assert.Contains(t, out, "Bundle manifest for: demo")
	assert.Contains(t, out, "/p/config.toml -> .")
	assert.Contains(t, out, "└── widget")
}

func TestTreeRendererEmpty(t *testing.T) {
	out := (&TreeRenderer{}).Render(&Manifest{AppName: "demo"})
	assert.Contains(t, out, "(none)")
}
