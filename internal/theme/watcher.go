package theme

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/parterm/parterm/internal/logging"
)

// watchDebounce coalesces bursts of filesystem events from editors that
// write a file in several steps.
const watchDebounce = 250 * time.Millisecond

// Watcher reloads themes when .json files in the theme folder change.
type Watcher struct {
	manager *Manager
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewWatcher creates a watcher over the manager's theme folder.
func NewWatcher(manager *Manager) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		manager: manager,
		watcher: fsWatcher,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the theme folder. The folder must already exist;
// call Manager.EnsureDefaultTheme (or LoadThemes) first.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.manager.ThemesDir()); err != nil {
		return err
	}
	w.running = true

	go w.watch()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	_ = w.watcher.Close()
}

func (w *Watcher) watch() {
	var debounce *time.Timer

	reload := func() {
		if err := w.manager.LoadThemes(); err != nil {
			w.manager.sink.LogEvent(
				"Theme reload failed: "+err.Error(),
				false, logging.SeverityWarning,
			)
		}
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(watchDebounce, reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.manager.sink.LogEvent(
				"Theme watcher error: "+err.Error(),
				false, logging.SeverityWarning,
			)

		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}
