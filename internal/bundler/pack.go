package bundler

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/YounesRabeh/go-app-template/internal/manifest"
)

// ArchiveName is the data archive produced by the pack stage.
const ArchiveName = "data.zip"

// Pack archives all manifest data files into one zip inside the bundle
// directory. Entries keep their manifest destination so the archive can
// be unpacked directly over a bundle root.
func (b *Bundler) Pack(m *manifest.Manifest, bundleDir string) (string, error) {
	archivePath := filepath.Join(bundleDir, ArchiveName)

	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive %q: %w", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, df := range m.DataFiles {
		if err := addToArchive(zw, df); err != nil {
			zw.Close()
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}

	b.log.Info().Str("archive", archivePath).Msg("data files packed")
	return archivePath, nil
}

// addToArchive writes one data file, or every file of a data folder, into
// the zip under its bundle-relative destination.
func addToArchive(zw *zip.Writer, df manifest.DataFile) error {
	info, err := os.Stat(df.Source)
	if err != nil {
		// Analyzed but vanished since; the manifest treats missing
		// paths as advisory, so does the archive.
		return nil
	}

	if !info.IsDir() {
		name := filepath.ToSlash(filepath.Join(df.Dest, filepath.Base(df.Source)))
		return writeArchiveEntry(zw, df.Source, name)
	}

	return filepath.WalkDir(df.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(df.Source, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(filepath.Join(df.Dest, rel))
		return writeArchiveEntry(zw, path, name)
	})
}

func writeArchiveEntry(zw *zip.Writer, source, name string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", source, err)
	}
	defer in.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %q to archive: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("failed to archive %q: %w", source, err)
	}
	return nil
}
