// Package ui implements the staged main window of the application
// template.
package ui

import (
	"fmt"
	"image/color"
	"net/url"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/YounesRabeh/go-app-template/internal/clipboard"
	"github.com/YounesRabeh/go-app-template/internal/config"
	"github.com/YounesRabeh/go-app-template/internal/resources"
	"github.com/YounesRabeh/go-app-template/internal/theme"
)

// initialStage is the stage shown at startup, zero-based.
const initialStage = 0

// App represents the main GUI application built from the template.
type App struct {
	// Core components
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	log    zerolog.Logger

	// Services
	res    *resources.Locator
	themes *theme.Manager
	clip   clipboard.Manager

	// UI components
	stages      []*Stage
	stack       *fyne.Container
	statusLabel *widget.Label
	fileEntry   *widget.Entry

	current int
}

// New creates the application window with all stages wired up.
func New(cfg *config.Config, log zerolog.Logger, res *resources.Locator) *App {
	fyneApp := app.New()

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	a := &App{
		app:         fyneApp,
		window:      window,
		cfg:         cfg,
		log:         log,
		res:         res,
		themes:      theme.NewManager(fyneApp.Settings(), cfg.Window.ThemeMode, log),
		clip:        clipboard.NewFyneManager(fyneApp.Clipboard()),
		statusLabel: widget.NewLabel("Ready"),
	}

	a.stages = []*Stage{
		a.buildStage1(),
		a.buildStage2(),
		a.buildStage3(),
	}
	return a
}

// Run starts the application event loop.
func (a *App) Run() {
	a.window.SetMainMenu(a.buildMainMenu())
	a.window.SetContent(a.buildContent())
	a.enableDragDrop()
	a.gotoStage(initialStage)
	a.window.ShowAndRun()
}

// buildContent assembles the stage stack with the status bar below it.
func (a *App) buildContent() fyne.CanvasObject {
	// Invisible rectangle enforcing the configured minimum window size.
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(float32(a.cfg.Window.MinWidth), float32(a.cfg.Window.MinHeight)))

	objects := make([]fyne.CanvasObject, 0, len(a.stages))
	for _, stage := range a.stages {
		view := stage.View()
		view.Hide()
		objects = append(objects, view)
	}
	a.stack = container.NewStack(objects...)

	return container.NewStack(minSize, container.NewBorder(nil, a.statusLabel, nil, nil, a.stack))
}

// gotoStage switches the visible stage, zero-based.
func (a *App) gotoStage(index int) {
	if index < 0 || index >= len(a.stages) {
		return
	}

	for i, obj := range a.stack.Objects {
		if i == index {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
	a.current = index
	a.statusLabel.SetText(fmt.Sprintf("Stage %d of %d: %s", index+1, len(a.stages), a.stages[index].Title))
	a.log.Debug().Int("stage", index+1).Msg("switched stage")
}

// buildMainMenu creates the menu bar: file, view and help menus.
func (a *App) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Log Folder", a.handleOpenLogFolder),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Theme", func() {
			a.themes.Toggle()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.handleAbout),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
}

// handleOpenLogFolder opens the folder holding the persistent log file.
func (a *App) handleOpenLogFolder() {
	cwd, err := os.Getwd()
	if err != nil {
		a.showError("Log Folder", err)
		return
	}
	u := &url.URL{Scheme: "file", Path: cwd}
	if err := a.app.OpenURL(u); err != nil {
		a.showError("Log Folder", err)
	}
}

// handleAbout shows the about dialog.
func (a *App) handleAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("%s %s", a.cfg.App.Name, a.cfg.App.Version),
		a.window)
}

// enableDragDrop routes dropped files into the stage 1 file entry.
func (a *App) enableDragDrop() {
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		uri := uris[0]

		if uri.Scheme() != "file" {
			dialog.ShowError(fmt.Errorf("invalid file path"), a.window)
			return
		}

		path := uri.Path()
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			dialog.ShowError(fmt.Errorf("please drop a file, not a folder"), a.window)
			return
		}

		a.fileEntry.SetText(path)
		a.log.Debug().Str("path", path).Msg("file dropped")
	})
}

// showError shows an error dialog and logs the failure.
func (a *App) showError(title string, err error) {
	a.log.Error().Str("context", title).Err(err).Msg("ui error")
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}
