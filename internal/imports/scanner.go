package imports

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// FrameworkPrefix is the import path prefix of the GUI framework whose
// submodules decide what the bundler has to ship.
const FrameworkPrefix = "fyne.io/fyne/v2/"

// SourceScanner defines the interface for scanning source trees for
// framework submodule imports.
type SourceScanner interface {
	Scan(root string) ([]string, error)
}

// Scanner implements SourceScanner over a directory of Go source files.
type Scanner struct {
	prefix string
	log    zerolog.Logger
}

// NewScanner creates a Scanner for the default framework prefix.
func NewScanner(log zerolog.Logger) *Scanner {
	return &Scanner{
		prefix: FrameworkPrefix,
		log:    log,
	}
}

// NewScannerForPrefix creates a Scanner that looks for imports below the
// given prefix. The prefix must end with a slash.
func NewScannerForPrefix(prefix string, log zerolog.Logger) *Scanner {
	return &Scanner{
		prefix: prefix,
		log:    log,
	}
}

// Scan walks all Go source files under root and returns the sorted,
// deduplicated set of framework submodule names imported anywhere in the
// tree. Files that fail to parse are skipped; the scan itself only fails
// when root is not a readable directory.
func (s *Scanner) Scan(root string) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("root cannot be empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	seen := make(map[string]struct{})
	fset := token.NewFileSet()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries degrade to a partial scan.
			s.log.Warn().Str("path", path).Err(err).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}

		s.collectFile(fset, path, seen)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// collectFile parses a single file and records every framework submodule it
// imports. Parse failures are swallowed: a broken file contributes nothing
// but never aborts the scan.
func (s *Scanner) collectFile(fset *token.FileSet, path string, seen map[string]struct{}) {
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		s.log.Debug().Str("path", path).Err(err).Msg("skipping unparsable file")
		return
	}

	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if name, ok := s.submoduleName(importPath); ok {
			seen[name] = struct{}{}
		}
	}
}

// submoduleName extracts the first path segment below the framework prefix.
// Bare imports of the framework root carry no submodule and are ignored.
func (s *Scanner) submoduleName(importPath string) (string, bool) {
	rest, ok := strings.CutPrefix(importPath, s.prefix)
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest, rest != ""
}

// shouldSkipDir reports whether a directory never contributes to the bundle.
func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return name == "vendor" || name == "testdata" || name == "dist"
}
