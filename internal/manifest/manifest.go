// Package manifest assembles the packaging manifest consumed by the
// bundler: the data files to ship and the framework submodules to keep.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/YounesRabeh/go-app-template/internal/config"
)

// FileName is the manifest written into the bundle output directory.
const FileName = "bundle.yaml"

// DataFile is one (source, destination folder) pair copied into the
// bundle. Dest is relative to the bundle root.
type DataFile struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// Manifest lists everything the bundler ships besides the executable.
type Manifest struct {
	AppName       string     `yaml:"app"`
	Version       string     `yaml:"version,omitempty"`
	DataFiles     []DataFile `yaml:"data_files"`
	HiddenImports []string   `yaml:"hidden_imports"`
}

// Build assembles a manifest from the project configuration and the
// scanned framework submodules. Paths that do not exist on disk are
// logged as warnings and left out; a sparse manifest is never an error.
func Build(cfg *config.Config, root string, submodules []string, log zerolog.Logger) *Manifest {
	m := &Manifest{
		AppName:       cfg.App.Name,
		Version:       cfg.App.Version,
		DataFiles:     []DataFile{},
		HiddenImports: submodules,
	}
	if m.HiddenImports == nil {
		m.HiddenImports = []string{}
	}

	add := func(source, dest string) {
		path := source
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if _, err := os.Stat(path); err != nil {
			log.Warn().Str("path", path).Msg("manifest entry missing on disk, skipping")
			return
		}
		m.DataFiles = append(m.DataFiles, DataFile{Source: path, Dest: dest})
	}

	add(config.DefaultPath, ".")

	folders := cfg.Resources.Folders()
	for _, category := range sortedKeys(folders) {
		add(folders[category], filepath.Join(filepath.Base(cfg.Resources.Base), category))
	}

	return m
}

// YAML serializes the manifest.
func (m *Manifest) YAML() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return data, nil
}

// WriteFile serializes the manifest as YAML to a file.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// Load reads a manifest back from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return &m, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
