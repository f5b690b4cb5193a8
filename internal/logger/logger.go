// Package logger configures the application's zerolog output: a colored
// console writer for development and an optional append-only log file for
// bundled runs.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// FileName is the log file written next to the application when
// persistence is enabled.
const FileName = "__app.log"

// Options selects where and how much the application logs.
type Options struct {
	Level   string // DEBUG..CRITICAL, case-insensitive
	Console bool   // write human-readable output to stdout
	Persist bool   // append to FileName under Dir
	AppName string // shown in the log file session header
	Dir     string // directory for the log file, defaults to cwd
}

// NewConsole returns a console-only logger, used during startup before the
// configuration has been loaded.
func NewConsole(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// New builds the application logger from the given options. The returned
// close function flushes and closes the log file, if one was opened.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level := parseLevel(opts.Level)
	noClose := func() error { return nil }

	var writers []io.Writer
	if opts.Console {
		console := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
		}
		writers = append(writers, console)
	}

	var file *os.File
	if opts.Persist {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, FileName)

		var err error
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noClose, fmt.Errorf("failed to open log file %q: %w", path, err)
		}
		writeSessionHeader(file, opts.AppName, level)
		writers = append(writers, file)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), noClose, nil
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	closeFn := noClose
	if file != nil {
		closeFn = file.Close
	}
	return log, closeFn, nil
}

// parseLevel maps the config's level names onto zerolog levels. Unknown
// names fall back to info; the config layer validates them beforehand.
func parseLevel(raw string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "CRITICAL":
		return zerolog.FatalLevel
	}
	return zerolog.InfoLevel
}

// writeSessionHeader prepends an informative banner to each logging
// session so appended runs stay distinguishable in the file.
func writeSessionHeader(w io.Writer, appName string, level zerolog.Level) {
	if appName == "" {
		appName = "<Unnamed Application>"
	}
	cwd, _ := os.Getwd()

	lines := []string{
		strings.Repeat("=", 70),
		fmt.Sprintf("> LOG FILE for %s", appName),
		fmt.Sprintf("  Session started: %s", time.Now().Format(time.DateTime)),
		"",
		fmt.Sprintf("  Log level ........ %s", level.String()),
		fmt.Sprintf("  Go runtime ....... %s", runtime.Version()),
		fmt.Sprintf("  Platform ......... %s/%s", runtime.GOOS, runtime.GOARCH),
		fmt.Sprintf("  Working dir ...... %s", cwd),
		strings.Repeat("=", 70),
		"",
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}
