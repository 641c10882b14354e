// Package app provides application state, configuration, and events.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"paintr/internal/actions"
	"paintr/internal/canvas"
	"paintr/internal/clipboard"
	"paintr/internal/edit"
	pimage "paintr/internal/image"
	"paintr/internal/selection"
	"paintr/pkg/colorutil"
	"paintr/pkg/geometry"
)

// NewFileName names documents that have never been saved.
const NewFileName = "Untitled"

var (
	// ErrNoCanvas is returned by operations that need an open document.
	ErrNoCanvas = errors.New("no image is open")
	// ErrClipboardEmpty is returned when the clipboard holds no image.
	ErrClipboardEmpty = errors.New("clipboard is empty or holds no image")
)

// State holds the editor, the clipboard, and the notification log, and
// dispatches events to the UI.
type State struct {
	mu sync.RWMutex
	// doc guards the document against the render goroutine. Mutations
	// happen on the event goroutine, so reads there need no lock.
	doc sync.RWMutex

	editor    *Editor
	clipboard clipboard.Clipboard
	modified  bool

	notifications []Notification

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventDocumentOpened EventType = iota
	EventDocumentSaved
	EventCanvasChanged
	EventToolChanged
	EventNotification
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NotificationLevel grades a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelError
)

func (l NotificationLevel) String() string {
	if l == LevelError {
		return "Error"
	}
	return "Info"
}

// Notification is a message shown in the notification bar.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NewState creates the application state around a clipboard.
func NewState(cb clipboard.Clipboard, historyLimit int) *State {
	return &State{
		editor:    NewEditor(historyLimit),
		clipboard: cb,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Editor returns the document editor.
func (s *State) Editor() *Editor {
	return s.editor
}

// withDoc runs fn with the document write-locked.
func (s *State) withDoc(fn func()) {
	s.doc.Lock()
	defer s.doc.Unlock()
	fn()
}

// View runs fn with the document read-locked. fn receives nil when no
// document is open and must not keep d.
func (s *State) View(fn func(d *canvas.Data)) {
	s.doc.RLock()
	defer s.doc.RUnlock()
	fn(s.editor.Canvas())
}

// Canvas returns the open document, or nil.
func (s *State) Canvas() *canvas.Data {
	return s.editor.Canvas()
}

// Modified reports whether the document changed since it was opened or
// last saved.
func (s *State) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

func (s *State) setModified(modified bool) {
	s.mu.Lock()
	s.modified = modified
	s.mu.Unlock()
}

// Notifications returns every notification shown so far, oldest first.
func (s *State) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.notifications...)
}

// Notify records a notification and emits EventNotification.
func (s *State) Notify(level NotificationLevel, format string, args ...interface{}) {
	n := Notification{Level: level, Message: fmt.Sprintf(format, args...)}
	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	if level == LevelError {
		Logger().Error(n.Message)
	} else {
		Logger().Info(n.Message)
	}
	s.Emit(EventNotification, n)
}

// fail reports err as an error notification and returns it.
func (s *State) fail(err error) error {
	s.Notify(LevelError, "%v", err)
	return err
}

// changed marks the document modified and emits EventCanvasChanged.
func (s *State) changed() {
	s.setModified(true)
	s.Emit(EventCanvasChanged, nil)
}

func (s *State) open(d *canvas.Data) {
	s.withDoc(func() { s.editor.SetCanvas(d) })
	s.setModified(false)
	s.Emit(EventDocumentOpened, d.Path())
	s.Emit(EventCanvasChanged, nil)
}

// FileName returns the base name of the open document, or NewFileName.
func (s *State) FileName() string {
	d := s.Canvas()
	if d == nil {
		return NewFileName
	}
	return filepath.Base(d.Path())
}

// Status returns the selection description, or "" without a selection.
func (s *State) Status() string {
	d := s.Canvas()
	if d == nil {
		return ""
	}
	sel, ok := d.Selection()
	if !ok {
		return ""
	}
	return sel.Description()
}

// OpenImage loads the image at path as the new document.
func (s *State) OpenImage(path string) error {
	img, err := pimage.Load(path)
	if err != nil {
		return s.fail(fmt.Errorf("failed to open %s: %w", filepath.Base(path), err))
	}
	s.open(canvas.New(path, img))
	s.Notify(LevelInfo, "%s opened", s.FileName())
	return nil
}

// NewImage creates a white w×h document.
func (s *State) NewImage(w, h int) error {
	if w <= 0 || h <= 0 {
		return s.fail(fmt.Errorf("invalid image size %dx%d", w, h))
	}
	s.open(canvas.New(NewFileName, pimage.Solid(w, h, colorutil.White)))
	s.Notify(LevelInfo, "New file created")
	return nil
}

// NewImageFromClipboard creates a document from the clipboard image.
func (s *State) NewImageFromClipboard() error {
	img, err := s.clipboard.GetImage()
	if err != nil {
		return s.fail(err)
	}
	if img == nil {
		return s.fail(ErrClipboardEmpty)
	}
	s.open(canvas.New(NewFileName, img))
	s.Notify(LevelInfo, "New file created")
	return nil
}

// SaveAs writes the merged document to path and makes it the document
// path.
func (s *State) SaveAs(path string) error {
	d := s.Canvas()
	if d == nil {
		return s.fail(ErrNoCanvas)
	}
	var err error
	s.withDoc(func() { err = d.Save(path) })
	if err != nil {
		return s.fail(err)
	}
	s.setModified(false)
	s.Notify(LevelInfo, "%s saved", s.FileName())
	s.Emit(EventDocumentSaved, path)
	return nil
}

// ClipboardImageSize returns the size of the clipboard image, if any. The
// new image dialog uses it as its default.
func (s *State) ClipboardImageSize() (int, int, bool) {
	img, err := s.clipboard.GetImage()
	if err != nil || img == nil {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Copy puts the visible pixels under the selection on the clipboard. It
// returns false when there is nothing selected.
func (s *State) Copy() (bool, error) {
	d := s.Canvas()
	if d == nil {
		return false, nil
	}
	sel, ok := d.Selection()
	if !ok {
		return false, nil
	}
	img, ok := sel.Copy(d.Merged(), selection.Shrink)
	if !ok {
		return false, nil
	}
	if err := s.clipboard.PutImage(img); err != nil {
		return false, s.fail(err)
	}
	s.Notify(LevelInfo, "Copied")
	return true, nil
}

// Paste adds the clipboard image as a new plane. It returns false when
// there is no document or the clipboard holds no image.
func (s *State) Paste() (bool, error) {
	img, err := s.clipboard.GetImage()
	if err != nil {
		return false, s.fail(err)
	}
	if img == nil {
		return false, nil
	}
	var done bool
	s.withDoc(func() { done = s.editor.Do(actions.Paste(img), edit.NonMergeable) })
	if !done {
		return false, nil
	}
	s.changed()
	s.Notify(LevelInfo, "Pasted")
	return true, nil
}

// Undo reverts the newest undo step.
func (s *State) Undo() bool {
	var desc edit.Desc
	var ok bool
	s.withDoc(func() { desc, ok = s.editor.Undo() })
	if !ok {
		return false
	}
	s.changed()
	s.Notify(LevelInfo, "Undo %s", desc)
	return true
}

// Redo re-applies the newest undone step.
func (s *State) Redo() bool {
	var desc edit.Desc
	var ok bool
	s.withDoc(func() { desc, ok = s.editor.Redo() })
	if !ok {
		return false
	}
	s.changed()
	s.Notify(LevelInfo, "Redo %s", desc)
	return true
}

// SelectAll selects the whole canvas as it is currently placed.
func (s *State) SelectAll() {
	d := s.Canvas()
	if d == nil {
		return
	}
	sel := selection.FromRect(geometry.RectFromOriginSize(d.Position(), d.Size()))
	s.withDoc(func() { s.editor.Select(sel) })
	s.Emit(EventCanvasChanged, nil)
}

// Deselect drops the selection.
func (s *State) Deselect() {
	d := s.Canvas()
	if d == nil {
		return
	}
	s.withDoc(func() { s.editor.ClearSelection() })
	s.Emit(EventCanvasChanged, nil)
}

// Tool returns the active tool.
func (s *State) Tool() Tool {
	return s.editor.Tool()
}

// SetTool switches tools and emits EventToolChanged.
func (s *State) SetTool(t Tool) {
	if s.editor.Tool() == t {
		return
	}
	s.withDoc(func() { s.editor.SetTool(t) })
	s.Emit(EventToolChanged, t)
}

// PointerDown forwards a press in view coordinates to the active tool.
func (s *State) PointerDown(pt geometry.Point) {
	s.pointer(s.editor.PointerDown, pt)
}

// PointerMove forwards a drag in view coordinates to the active tool.
func (s *State) PointerMove(pt geometry.Point) {
	s.pointer(s.editor.PointerMove, pt)
}

// PointerUp forwards a release in view coordinates to the active tool.
func (s *State) PointerUp(pt geometry.Point) {
	s.pointer(s.editor.PointerUp, pt)
}

func (s *State) pointer(handle func(geometry.Point) bool, pt geometry.Point) {
	var changed bool
	s.withDoc(func() { changed = handle(pt) })
	s.pointerChanged(changed)
}

func (s *State) pointerChanged(changed bool) {
	if !changed {
		return
	}
	if s.editor.Tool() == ToolSelect {
		// Selection changes are not edits.
		s.Emit(EventCanvasChanged, nil)
		return
	}
	s.changed()
}
