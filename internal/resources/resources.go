// Package resources locates and indexes the resource folders named in the
// [resources] configuration section.
package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/YounesRabeh/go-app-template/internal/config"
)

// Locator resolves resource files by category and name.
type Locator struct {
	base  string
	dirs  map[string]string
	index map[string][]string
	log   zerolog.Logger
}

// NewLocator builds a Locator from the resource configuration. Category
// folders are resolved to absolute paths and indexed; the temp folder is
// created if missing.
func NewLocator(cfg config.ResourcesConfig, log zerolog.Logger) (*Locator, error) {
	base, err := filepath.Abs(cfg.Base)
	if err != nil {
		return nil, fmt.Errorf("invalid resource base %q: %w", cfg.Base, err)
	}

	l := &Locator{
		base:  base,
		dirs:  make(map[string]string),
		index: make(map[string][]string),
		log:   log,
	}

	for category, dir := range cfg.Folders() {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid %s folder %q: %w", category, dir, err)
		}
		l.dirs[category] = abs
		l.index[category] = listFiles(abs)
		log.Debug().
			Str("category", category).
			Str("dir", abs).
			Int("files", len(l.index[category])).
			Msg("indexed resource folder")
	}

	temp, err := config.EnsureDir(cfg.Temp, true)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare temp folder: %w", err)
	}
	l.dirs["temp"] = temp

	return l, nil
}

// Base returns the absolute resource base folder.
func (l *Locator) Base() string {
	return l.base
}

// Dir returns the absolute folder for a category, empty if unknown.
func (l *Locator) Dir(category string) string {
	return l.dirs[category]
}

// Categories returns the known categories in sorted order.
func (l *Locator) Categories() []string {
	cats := make([]string, 0, len(l.dirs))
	for c := range l.dirs {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// All returns the indexed files of a category.
func (l *Locator) All(category string) []string {
	return l.index[category]
}

// Path resolves a file inside a category folder. A missing file is an
// error and is logged, matching the advisory failure mode of the rest of
// the resource layer.
func (l *Locator) Path(category, name string) (string, error) {
	dir, ok := l.dirs[category]
	if !ok {
		return "", fmt.Errorf("unknown resource category %q", category)
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		l.log.Error().Str("path", path).Msg("resource not found")
		return "", fmt.Errorf("resource not found: %s", path)
	}
	return path, nil
}

// TempPath returns a path inside the temp folder without checking for
// existence, since temp files are created by the caller.
func (l *Locator) TempPath(name string) string {
	return filepath.Join(l.dirs["temp"], name)
}

// listFiles recursively collects all regular files under dir. A missing
// or unreadable folder yields an empty list.
func listFiles(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files
}
