package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Stage is one screen of the staged main window.
type Stage struct {
	Title   string
	Content fyne.CanvasObject

	// Navigation button labels; empty hides the button.
	BackText string
	NextText string

	app *App
}

// View builds the stage layout: title, content, then the navigation bar
// pinned to the bottom.
func (s *Stage) View() fyne.CanvasObject {
	title := widget.NewLabel(s.Title)
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	nav := s.navBar()

	return container.NewBorder(title, nav, nil, nil, container.NewPadded(s.Content))
}

// navBar places the back button on the left and next on the right.
func (s *Stage) navBar() fyne.CanvasObject {
	var items []fyne.CanvasObject
	if s.BackText != "" {
		items = append(items, widget.NewButton(s.BackText, func() {
			s.app.gotoStage(s.app.current - 1)
		}))
	}
	items = append(items, layout.NewSpacer())
	if s.NextText != "" {
		items = append(items, widget.NewButton(s.NextText, func() {
			s.app.gotoStage(s.app.current + 1)
		}))
	}
	return container.NewHBox(items...)
}

// buildStage1 is the entry screen: pick or drop a file to work with.
func (a *App) buildStage1() *Stage {
	a.fileEntry = widget.NewEntry()
	a.fileEntry.SetPlaceHolder("Drop a file here or browse...")

	browse := widget.NewButton("Browse", func() {
		fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				a.showError("File Selection", err)
				return
			}
			if reader == nil {
				return // user cancelled
			}
			defer reader.Close()
			a.fileEntry.SetText(reader.URI().Path())
		}, a.window)
		fileDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Select an input file to get started."),
		container.NewBorder(nil, nil, nil, browse, a.fileEntry),
	)

	return &Stage{
		Title:    "Stage 1: Start",
		Content:  content,
		NextText: "Next → Stage 2",
		app:      a,
	}
}

// buildStage2 shows the indexed resource folders, one row per category.
func (a *App) buildStage2() *Stage {
	rows := container.NewVBox()
	for _, category := range a.res.Categories() {
		rows.Add(widget.NewLabel(fmt.Sprintf("%-8s %3d files  (%s)",
			category, len(a.res.All(category)), a.res.Dir(category))))
	}

	content := container.NewVBox(
		widget.NewLabel("Bundled resource folders:"),
		container.NewVScroll(rows),
	)

	return &Stage{
		Title:    "Stage 2: Resources",
		Content:  content,
		BackText: "← Back",
		NextText: "Next → Stage 3",
		app:      a,
	}
}

// buildStage3 is the summary screen with a copy-to-clipboard action.
func (a *App) buildStage3() *Stage {
	summary := widget.NewLabel(a.summaryText())
	summary.Wrapping = fyne.TextWrapWord

	copyBtn := widget.NewButton("Copy Summary", func() {
		if err := a.clip.SetContent(a.summaryText()); err != nil {
			a.showError("Clipboard", err)
			return
		}
		dialog.ShowInformation("Success", "Summary copied to clipboard.", a.window)
	})

	content := container.NewVBox(summary, copyBtn)

	return &Stage{
		Title:    "Stage 3: Summary",
		Content:  content,
		BackText: "← Back",
		app:      a,
	}
}

// summaryText renders the current session state for stage 3.
func (a *App) summaryText() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s\n", a.cfg.App.Name, a.cfg.App.Version)
	fmt.Fprintf(&builder, "Theme: %s (effective %s)\n", a.themes.Mode(), a.themes.Effective())
	if a.fileEntry != nil && a.fileEntry.Text != "" {
		fmt.Fprintf(&builder, "Input file: %s\n", a.fileEntry.Text)
	}
	fmt.Fprintf(&builder, "Resource base: %s\n", a.res.Base())
	if a.cfg.DevMode {
		builder.WriteString("Running from source (dev mode)\n")
	}
	return builder.String()
}
