// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"qet-wiremanager/internal/app"
	"qet-wiremanager/internal/version"
	"qet-wiremanager/ui/panels"
	"qet-wiremanager/ui/prefs"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app         fyne.App
	state       *app.State
	prefs       *prefs.Prefs
	wiresPanel  *panels.WiresPanel
	curvesPanel *panels.CurvesPanel
	statusBar   *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("QET Wire Manager")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.wiresPanel = panels.NewWiresPanel(mw.state)
	mw.curvesPanel = panels.NewCurvesPanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	// Main layout: wire table | curve list
	split := container.NewHSplit(
		mw.wiresPanel.Container(),
		mw.curvesPanel.Container(),
	)
	split.SetOffset(0.7)

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with the curve operations.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	importBtn := widget.NewButton("Import Wires", mw.onImportSchematic)
	buildBtn := widget.NewButton("Build Curve", mw.onBuildCurve)
	refreshBtn := widget.NewButton("Refresh Curve", mw.onRefreshCurve)
	measureBtn := widget.NewButton("Measure Length", mw.onMeasureCurve)

	return container.NewHBox(
		importBtn,
		widget.NewSeparator(),
		buildBtn,
		refreshBtn,
		measureBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", mw.onNewProject),
		fyne.NewMenuItem("Open Project...", mw.onOpenProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Schematic Export...", mw.onImportSchematic),
		fyne.NewMenuItem("Open Routing Document...", mw.onOpenDocument),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Project", mw.onSaveProject),
		fyne.NewMenuItem("Save Project As...", mw.onSaveProjectAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	wiresMenu := fyne.NewMenu("Wires",
		fyne.NewMenuItem("Build Curve", mw.onBuildCurve),
		fyne.NewMenuItem("Refresh Curve", mw.onRefreshCurve),
		fyne.NewMenuItem("Measure Length", mw.onMeasureCurve),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Densify Curve", mw.onDensifyCurve),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, wiresMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("QET Wire Manager - " + filepath.Base(path))
			mw.updateStatus("Project loaded: " + path)
		}
	})

	mw.state.On(app.EventWiresImported, func(data interface{}) {
		if n, ok := data.(int); ok {
			mw.updateStatus(fmt.Sprintf("Imported %d wires", n))
		}
	})

	mw.state.On(app.EventCurveBuilt, func(data interface{}) {
		mw.updateStatus("Curve built")
	})

	mw.state.On(app.EventLengthMeasured, func(data interface{}) {
		mw.updateStatus("Length written back to wire table")
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// Menu action handlers

func (mw *MainWindow) onNewProject() {
	mw.state.Reset()
	mw.SetTitle("QET Wire Manager - New Project")
	mw.wiresPanel.Reload()
	mw.curvesPanel.Reload()
	mw.updateStatus("New project")
}

func (mw *MainWindow) onOpenProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".qwmproj"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onImportSchematic() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if _, err := mw.state.ImportSchematic(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".xml"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onOpenDocument() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadDocument(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.curvesPanel.Reload()
		mw.updateStatus("Document loaded: " + path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveProject() {
	if mw.state.ProjectPath == "" {
		mw.onSaveProjectAs()
		return
	}
	if err := mw.state.SaveProject(mw.state.ProjectPath); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveProjectAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".qwmproj" {
			path += ".qwmproj"
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("project.qwmproj")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onBuildCurve() {
	if _, err := mw.state.BuildSelectedCurve(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onRefreshCurve() {
	if err := mw.state.RefreshCurve(); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.updateStatus("Curve refreshed")
}

func (mw *MainWindow) onMeasureCurve() {
	if err := mw.state.MeasureCurve(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onDensifyCurve() {
	if err := mw.state.DensifyCurve(); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.updateStatus("Curve densified")
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About QET Wire Manager",
		fmt.Sprintf("QET Wire Manager v%s\n\n"+
			"Imports schematic conductor exports, manages wire tables,\n"+
			"and keeps 3D wire curves in sync with routing documents.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
