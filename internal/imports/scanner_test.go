package imports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestScanner() *Scanner {
	return NewScanner(zerolog.Nop())
}

func TestScanCollectsSubmodules(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import "fyne.io/fyne/v2/widget"
`)
	writeSource(t, dir, "sub/b.go", `package b

import (
	"fmt"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var _ = fmt.Sprint
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"container", "widget"}, got)
}

func TestScanEmptyDirectory(t *testing.T) {
	got, err := newTestScanner().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanNoFrameworkImports(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import (
	"os"
	"strings"
)

var _ = strings.ToUpper(os.Args[0])
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanSkipsUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.go", `package {{{ not go at all`)
	writeSource(t, dir, "ok.go", `package ok

import "fyne.io/fyne/v2/dialog"
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dialog"}, got)
}

func TestScanIgnoresBareFrameworkImport(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import "fyne.io/fyne/v2"
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanDeepImportUsesFirstSegment(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import "fyne.io/fyne/v2/data/binding"
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"data"}, got)
}

func TestScanSkipsVendorAndHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "vendor/v.go", `package v

import "fyne.io/fyne/v2/canvas"
`)
	writeSource(t, dir, ".hidden/h.go", `package h

import "fyne.io/fyne/v2/canvas"
`)
	writeSource(t, dir, "_skip/s.go", `package s

import "fyne.io/fyne/v2/canvas"
`)
	writeSource(t, dir, "keep/k.go", `package k

import "fyne.io/fyne/v2/layout"
`)

	got, err := newTestScanner().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"layout"}, got)
}

func TestScanIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import (
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
)
`)

	s := newTestScanner()
	first, err := s.Scan(dir)
	require.NoError(t, err)
	second, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"app", "theme"}, first)
}

func TestScanRejectsBadRoot(t *testing.T) {
	s := newTestScanner()

	_, err := s.Scan("")
	assert.Error(t, err)

	_, err = s.Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	writeSource(t, dir, "file.go", "package a\n")
	_, err = s.Scan(filepath.Join(dir, "file.go"))
	assert.Error(t, err)
}

func TestScanCustomPrefix(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go", `package a

import (
	"example.com/framework/core"
	"example.com/framework/widgets"
)
`)

	s := NewScannerForPrefix("example.com/framework/", zerolog.Nop())
	got, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "widgets"}, got)
}
