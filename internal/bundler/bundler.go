// Package bundler packages the application into a distributable directory
// in four stages: analyze, pack, emit, collect.
package bundler

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/YounesRabeh/go-app-template/internal/config"
	"github.com/YounesRabeh/go-app-template/internal/imports"
	"github.com/YounesRabeh/go-app-template/internal/manifest"
)

// Options configures a bundling run.
type Options struct {
	Root     string // project root to scan and build
	Output   string // directory receiving the bundle, default "dist"
	GOOS     string // target OS, default current
	GOARCH   string // target architecture, default current
	SkipPack bool   // skip the data archive stage
}

// Result reports what a bundling run produced.
type Result struct {
	BundleDir  string
	Executable string
	Archive    string
	Manifest   *manifest.Manifest
	Collected  []string
}

// Bundler drives the packaging pipeline for one project.
type Bundler struct {
	cfg     *config.Config
	opts    Options
	scanner imports.SourceScanner
	log     zerolog.Logger
}

// New creates a Bundler. Nil config falls back to defaults, matching the
// advisory handling of a missing config file.
func New(cfg *config.Config, opts Options, log zerolog.Logger) *Bundler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Output == "" {
		opts.Output = "dist"
	}
	return &Bundler{
		cfg:     cfg,
		opts:    opts,
		scanner: imports.NewScanner(log),
		log:     log,
	}
}

// Run executes all four stages and returns the aggregate result.
func (b *Bundler) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	m, err := b.Analyze()
	if err != nil {
		return nil, err
	}
	result.Manifest = m

	bundleDir := filepath.Join(b.opts.Output, b.cfg.App.Name)
	if err := os.MkdirAll(bundleDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bundle dir %q: %w", bundleDir, err)
	}
	result.BundleDir = bundleDir

	if !b.opts.SkipPack {
		archive, err := b.Pack(m, bundleDir)
		if err != nil {
			return nil, err
		}
		result.Archive = archive
	}

	exe, err := b.Emit(ctx, bundleDir)
	if err != nil {
		return nil, err
	}
	result.Executable = exe

	collected, err := b.Collect(m, bundleDir)
	if err != nil {
		return nil, err
	}
	result.Collected = collected

	b.log.Info().
		Str("bundle", bundleDir).
		Int("data_files", len(m.DataFiles)).
		Int("hidden_imports", len(m.HiddenImports)).
		Msg("bundle complete")
	return result, nil
}

// Analyze scans the project sources and assembles the manifest.
func (b *Bundler) Analyze() (*manifest.Manifest, error) {
	submodules, err := b.scanner.Scan(b.opts.Root)
	if err != nil {
		return nil, fmt.Errorf("import scan failed: %w", err)
	}
	b.log.Info().Strs("submodules", submodules).Msg("framework submodules in use")

	return manifest.Build(b.cfg, b.opts.Root, submodules, b.log), nil
}

// Emit builds the application executable into the bundle directory.
func (b *Bundler) Emit(ctx context.Context, bundleDir string) (string, error) {
	exe := filepath.Join(bundleDir, b.exeName())

	cmd := exec.CommandContext(ctx, "go", "build", "-trimpath", "-ldflags=-s -w", "-o", exe, ".")
	cmd.Dir = b.opts.Root
	cmd.Env = append(os.Environ(),
		"GOOS="+b.targetOS(),
		"GOARCH="+b.targetArch(),
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("go build failed: %w\n%s", err, out)
	}

	b.log.Info().Str("executable", exe).Str("os", b.targetOS()).Str("arch", b.targetArch()).Msg("executable emitted")
	return exe, nil
}

// Collect copies the manifest's data files into the bundle directory,
// writes the manifest itself and drops the bundle marker that flips the
// app out of development mode.
func (b *Bundler) Collect(m *manifest.Manifest, bundleDir string) ([]string, error) {
	var collected []string

	for _, df := range m.DataFiles {
		dest := filepath.Join(bundleDir, df.Dest)

		info, err := os.Stat(df.Source)
		if err != nil {
			b.log.Warn().Str("path", df.Source).Msg("data file vanished since analysis, skipping")
			continue
		}

		if info.IsDir() {
			if err := copyDir(df.Source, dest); err != nil {
				return nil, fmt.Errorf("failed to copy %q: %w", df.Source, err)
			}
		} else {
			target := filepath.Join(dest, filepath.Base(df.Source))
			if err := copyFile(df.Source, target); err != nil {
				return nil, fmt.Errorf("failed to copy %q: %w", df.Source, err)
			}
		}
		collected = append(collected, dest)
	}

	manifestPath := filepath.Join(bundleDir, manifest.FileName)
	if err := m.WriteFile(manifestPath); err != nil {
		return nil, err
	}
	collected = append(collected, manifestPath)

	marker := filepath.Join(bundleDir, config.BundleMarker)
	if err := os.WriteFile(marker, []byte(b.cfg.App.Version+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write bundle marker: %w", err)
	}
	collected = append(collected, marker)

	return collected, nil
}

// exeName derives the executable name from the app name and target OS.
func (b *Bundler) exeName() string {
	name := strings.ToLower(strings.ReplaceAll(b.cfg.App.Name, " ", "-"))
	return name + exeExt(b.targetOS())
}

func (b *Bundler) targetOS() string {
	if b.opts.GOOS != "" {
		return b.opts.GOOS
	}
	return runtime.GOOS
}

func (b *Bundler) targetArch() string {
	if b.opts.GOARCH != "" {
		return b.opts.GOARCH
	}
	return runtime.GOARCH
}

func exeExt(goos string) string {
	if goos == "windows" {
		return ".exe"
	}
	return ""
}
