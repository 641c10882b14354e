package app

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls a document file and calls back when another program
// modifies it. The callback runs on the watcher goroutine.
type FileWatcher struct {
	path          string
	checkInterval time.Duration
	onChange      func(path string)

	mu       sync.Mutex
	baseline time.Time
	stopCh   chan struct{}
}

// NewFileWatcher creates a watcher for path. It returns nil if the file
// cannot be stat'ed, e.g. for a document that was never saved.
func NewFileWatcher(path string, checkInterval time.Duration) *FileWatcher {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &FileWatcher{
		path:          path,
		checkInterval: checkInterval,
		baseline:      info.ModTime(),
	}
}

// OnChange sets the callback. Call it before Start.
func (w *FileWatcher) OnChange(callback func(path string)) {
	w.onChange = callback
}

// Path returns the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Start begins polling in a background goroutine.
func (w *FileWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop(w.stopCh)
}

// Stop ends polling. It is safe to call on a nil watcher.
func (w *FileWatcher) Stop() {
	if w == nil || w.stopCh == nil {
		return
	}
	close(w.stopCh)
	w.stopCh = nil
}

func (w *FileWatcher) watchLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if w.Changed() {
				Logger().Debug("document changed on disk", "path", w.path)
				w.ResetBaseline()
				if w.onChange != nil {
					w.onChange(w.path)
				}
			}
		}
	}
}

// Changed reports whether the file was modified after the baseline.
func (w *FileWatcher) Changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return info.ModTime().After(w.baseline)
}

// ResetBaseline accepts the file's current state, e.g. after the editor
// itself saved it.
func (w *FileWatcher) ResetBaseline() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.baseline = info.ModTime()
	w.mu.Unlock()
}
