// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"paintr/internal/app"
	pimage "paintr/internal/image"
	"paintr/internal/version"
	"paintr/pkg/geometry"
	"paintr/ui/canvas"
	"paintr/ui/dialogs"
	"paintr/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	appTitle          = "Paintr"
	fileCheckInterval = 2 * time.Second
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	canvas      *canvas.EditorCanvas
	toolButtons map[app.Tool]*widget.Button
	statusBar   *widget.Label
	notifBar    *widget.Label
	zoomLabel   *widget.Label
	pointerInfo *widget.Label

	watcher *app.FileWatcher
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window:      win,
		app:         fyneApp,
		state:       state,
		prefs:       p,
		toolButtons: make(map[app.Tool]*widget.Button),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.SetOnClosed(mw.SavePreferences)
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewEditorCanvas(mw.state)

	mw.statusBar = widget.NewLabel("")
	mw.notifBar = widget.NewLabel("Ready")
	mw.notifBar.Truncation = fyne.TextTruncateEllipsis
	mw.zoomLabel = widget.NewLabel("100%")
	mw.pointerInfo = widget.NewLabel("")

	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
		mw.prefs.SetFloat(prefs.KeyZoom, zoom)
	})
	mw.canvas.OnPointerMove(func(pt geometry.Point) {
		mw.pointerInfo.SetText(fmt.Sprintf("%d, %d", int(pt.X), int(pt.Y)))
	})

	statusRow := container.NewBorder(
		nil, nil,
		mw.statusBar,
		container.NewHBox(mw.pointerInfo, mw.zoomLabel),
		mw.notifBar,
	)

	content := container.NewBorder(
		mw.createToolbar(),              // top
		container.NewPadded(statusRow), // bottom
		nil,                            // left
		nil,                            // right
		mw.canvas,                      // center
	)
	mw.SetContent(content)
}

// createToolbar creates the tool buttons and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	tools := container.NewHBox()
	for _, tool := range app.Tools {
		tool := tool
		btn := widget.NewButton(tool.String(), func() {
			mw.state.SetTool(tool)
		})
		mw.toolButtons[tool] = btn
		tools.Add(btn)
	}
	mw.syncToolButtons()

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.canvas.ZoomOut),
		widget.NewButton("+", mw.canvas.ZoomIn),
		widget.NewButton("1:1", mw.canvas.ResetZoom),
	)
}

func (mw *MainWindow) syncToolButtons() {
	active := mw.state.Tool()
	for tool, btn := range mw.toolButtons {
		if tool == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	newItem := fyne.NewMenuItem("New...", mw.onNew)
	newItem.Shortcut = shortcut(fyne.KeyN, fyne.KeyModifierShortcutDefault)
	openItem := fyne.NewMenuItem("Open...", mw.onOpen)
	openItem.Shortcut = shortcut(fyne.KeyO, fyne.KeyModifierShortcutDefault)
	saveItem := fyne.NewMenuItem("Save As...", mw.onSaveAs)
	saveItem.Shortcut = shortcut(fyne.KeyS, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift)

	fileMenu := fyne.NewMenu("File",
		newItem,
		fyne.NewMenuItem("New from Clipboard", mw.onNewFromClipboard),
		fyne.NewMenuItemSeparator(),
		openItem,
		fyne.NewMenuItemSeparator(),
		saveItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	undoItem := fyne.NewMenuItem("Undo", mw.onUndo)
	undoItem.Shortcut = shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault)
	redoItem := fyne.NewMenuItem("Redo", mw.onRedo)
	redoItem.Shortcut = shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift)
	copyItem := fyne.NewMenuItem("Copy", mw.onCopy)
	copyItem.Shortcut = shortcut(fyne.KeyC, fyne.KeyModifierShortcutDefault)
	pasteItem := fyne.NewMenuItem("Paste", mw.onPaste)
	pasteItem.Shortcut = shortcut(fyne.KeyV, fyne.KeyModifierShortcutDefault)

	editMenu := fyne.NewMenu("Edit",
		undoItem,
		redoItem,
		fyne.NewMenuItemSeparator(),
		copyItem,
		pasteItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", mw.state.SelectAll),
		fyne.NewMenuItem("Deselect", mw.state.Deselect),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Actual Size", mw.canvas.ResetZoom),
	)

	toolItems := make([]*fyne.MenuItem, 0, len(app.Tools))
	for _, tool := range app.Tools {
		tool := tool
		toolItems = append(toolItems, fyne.NewMenuItem(tool.String(), func() { mw.state.SetTool(tool) }))
	}
	toolsMenu := fyne.NewMenu("Tools", toolItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, toolsMenu, helpMenu))
}

func shortcut(key fyne.KeyName, mod fyne.KeyModifier) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}
}

// setupShortcuts binds keys that have no menu item.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()
	c.AddShortcut(shortcut(fyne.KeyD, fyne.KeyModifierShortcutDefault), func(fyne.Shortcut) {
		mw.state.Deselect()
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyM:
			mw.state.SetTool(app.ToolMove)
		case fyne.KeyS:
			mw.state.SetTool(app.ToolSelect)
		case fyne.KeyB:
			mw.state.SetTool(app.ToolBrush)
		case fyne.KeyEscape:
			mw.state.Editor().CancelGesture()
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDocumentOpened, func(data interface{}) {
		mw.updateTitle()
		if path, ok := data.(string); ok {
			mw.watch(path)
		}
	})

	mw.state.On(app.EventDocumentSaved, func(data interface{}) {
		mw.updateTitle()
		if path, ok := data.(string); ok {
			mw.saveLastDir(path)
			mw.watch(path)
		}
	})

	mw.state.On(app.EventCanvasChanged, func(data interface{}) {
		mw.statusBar.SetText(mw.state.Status())
		mw.updateTitle()
	})

	mw.state.On(app.EventToolChanged, func(data interface{}) {
		mw.syncToolButtons()
		if tool, ok := data.(app.Tool); ok {
			mw.prefs.SetString(prefs.KeyLastTool, tool.String())
		}
	})

	mw.state.On(app.EventNotification, func(data interface{}) {
		if n, ok := data.(app.Notification); ok {
			mw.notifBar.SetText(n.Message)
			if n.Level == app.LevelError {
				mw.notifBar.Importance = widget.DangerImportance
			} else {
				mw.notifBar.Importance = widget.MediumImportance
			}
			mw.notifBar.Refresh()
		}
	})
}

func (mw *MainWindow) updateTitle() {
	title := appTitle + " - " + mw.state.FileName()
	if mw.state.Modified() {
		title += " *"
	}
	mw.SetTitle(title)
}

// watch reports external changes to the document file.
func (mw *MainWindow) watch(path string) {
	mw.watcher.Stop()
	mw.watcher = app.NewFileWatcher(path, fileCheckInterval)
	if mw.watcher == nil {
		return
	}
	mw.watcher.OnChange(func(p string) {
		mw.state.Notify(app.LevelInfo, "%s changed on disk", filepath.Base(p))
	})
	mw.watcher.Start()
}

// restorePreferences applies the saved tool and zoom.
func (mw *MainWindow) restorePreferences() {
	if tool, ok := app.ParseTool(mw.prefs.String(prefs.KeyLastTool)); ok {
		mw.state.SetTool(tool)
	}
	if zoom := mw.prefs.FloatWithFallback(prefs.KeyZoom, 1.0); zoom != 1.0 {
		mw.canvas.SetZoom(zoom)
	}
}

// SavePreferences writes changed preferences to disk.
func (mw *MainWindow) SavePreferences() {
	mw.watcher.Stop()
	if err := mw.prefs.SaveIfChanged(); err != nil {
		app.Logger().Warn("failed to save preferences", "err", err)
	}
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
}

// Menu action handlers

func (mw *MainWindow) onNew() {
	w, h, ok := mw.state.ClipboardImageSize()
	if !ok {
		if d := mw.state.Canvas(); d != nil {
			w, h = d.Size().ImageSize()
		}
	}
	dialogs.NewNewImageDialog(w, h, mw.Window, func(w, h int) {
		_ = mw.state.NewImage(w, h)
	}).Show()
}

func (mw *MainWindow) onNewFromClipboard() {
	_ = mw.state.NewImageFromClipboard()
}

func (mw *MainWindow) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.OpenImage(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(pimage.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveAs() {
	if mw.state.Canvas() == nil {
		_ = mw.state.SaveAs("")
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !pimage.IsSupportedFormat(path) {
			path = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		}
		if err := mw.state.SaveAs(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	name := mw.state.FileName()
	if !pimage.IsSupportedFormat(name) {
		name += ".png"
	}
	fd.SetFileName(name)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onUndo() {
	mw.state.Undo()
}

func (mw *MainWindow) onRedo() {
	mw.state.Redo()
}

func (mw *MainWindow) onCopy() {
	_, _ = mw.state.Copy()
}

func (mw *MainWindow) onPaste() {
	_, _ = mw.state.Paste()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s %s\n\n"+
			"A layered raster image editor.\n\n"+
			"%s",
			appTitle, version.Version, version.BuildInfo()),
		mw.Window)
}
