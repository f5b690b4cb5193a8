// Command bundle packages the application into a standalone distributable
// directory: it scans the sources for framework submodule imports, builds
// the packaging manifest and runs the four bundling stages.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/YounesRabeh/go-app-template/internal/bundler"
	"github.com/YounesRabeh/go-app-template/internal/config"
	"github.com/YounesRabeh/go-app-template/internal/imports"
	"github.com/YounesRabeh/go-app-template/internal/logger"
	"github.com/YounesRabeh/go-app-template/internal/manifest"
)

func main() {
	cmd := &cli.Command{
		Name:  "bundle",
		Usage: "Package the app into a standalone distributable directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   ".",
				Usage:   "Project root to scan and build",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "Configuration file, resolved relative to the project root",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			scanCmd(),
			manifestCmd(),
			buildCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the project configuration for a subcommand run. A missing
// config file degrades to defaults with a warning.
func setup(cmd *cli.Command) (*config.Config, zerolog.Logger) {
	level := zerolog.InfoLevel
	if cmd.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsole(level)

	path := cmd.String("config")
	if !filepath.IsAbs(path) {
		path = filepath.Join(cmd.String("root"), path)
	}

	cfg, err := config.Load(path, log)
	if err != nil {
		log.Warn().Err(err).Msg("configuration unusable, proceeding with defaults")
		cfg = config.DefaultConfig()
	}
	return cfg, log
}

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "List the framework submodules imported by the project",
		Description: `Walks every Go source file under the project root and prints the
sorted, deduplicated set of framework submodules referenced in import
statements. Files that fail to parse are skipped.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, log := setup(cmd)

			submodules, err := imports.NewScanner(log).Scan(cmd.String("root"))
			if err != nil {
				return err
			}
			for _, name := range submodules {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:  "manifest",
		Usage: "Print the packaging manifest without building anything",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "Emit YAML instead of the human-readable tree",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, log := setup(cmd)

			b := bundler.New(cfg, bundler.Options{Root: cmd.String("root")}, log)
			m, err := b.Analyze()
			if err != nil {
				return err
			}

			if cmd.Bool("yaml") {
				data, err := m.YAML()
				if err != nil {
					return err
				}
				os.Stdout.Write(data)
				return nil
			}
			fmt.Print((&manifest.TreeRenderer{}).Render(m))
			return nil
		},
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Run all bundling stages and emit the distributable directory",
		Description: `Runs the full pipeline: analyze (import scan + manifest), pack
(data archive), emit (compile the executable) and collect (assemble the
output directory with the executable, data files and manifest).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "dist",
				Usage:   "Output directory for the bundle",
			},
			&cli.StringFlag{
				Name:  "os",
				Usage: "Target operating system (GOOS), defaults to the host",
			},
			&cli.StringFlag{
				Name:  "arch",
				Usage: "Target architecture (GOARCH), defaults to the host",
			},
			&cli.BoolFlag{
				Name:  "skip-pack",
				Usage: "Skip the data archive stage",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, log := setup(cmd)

			b := bundler.New(cfg, bundler.Options{
				Root:     cmd.String("root"),
				Output:   cmd.String("output"),
				GOOS:     cmd.String("os"),
				GOARCH:   cmd.String("arch"),
				SkipPack: cmd.Bool("skip-pack"),
			}, log)

			result, err := b.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Bundle written to %s\n", result.BundleDir)
			fmt.Printf("  executable: %s\n", result.Executable)
			if result.Archive != "" {
				fmt.Printf("  archive:    %s\n", result.Archive)
			}
			fmt.Printf("  manifest:   %d data files, %d hidden imports\n",
				len(result.Manifest.DataFiles), len(result.Manifest.HiddenImports))
			return nil
		},
	}
}
