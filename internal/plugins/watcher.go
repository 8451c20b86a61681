package plugins

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"reqsmith/internal/domain"
	"reqsmith/internal/logging"
	"reqsmith/internal/registry"
)

// Watcher hot-reloads handler manifests when files in the plugins
// directory change. Rapid saves are debounced so an editor writing a
// file in several chunks triggers one reload.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	registry    *registry.Registry
	dir         string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for the status endpoint.
type WatcherStats struct {
	Reloads       int       `json:"reloads"`
	Removals      int       `json:"removals"`
	Errors        int       `json:"errors"`
	LastEventPath string    `json:"last_event_path,omitempty"`
	LastEventTime time.Time `json:"last_event_time,omitempty"`
}

// NewWatcher creates a watcher over the manifests directory.
func NewWatcher(dir string, r *registry.Registry) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		registry:    r,
		dir:         dir,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching; non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		logging.PluginsWarn("watcher: could not create %s: %v", w.dir, err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		logging.PluginsWarn("watcher: initial watch of %s failed: %v", w.dir, err)
	} else {
		logging.Plugins("watcher: watching %s", w.dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.PluginsError("watcher: close: %v", err)
	}
	logging.Plugins("watcher: stopped")
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.PluginsError("watcher: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, manifestSuffix) {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	logging.PluginsDebug("watcher: %s %s", event.Op, event.Name)
	w.mu.Lock()
	w.stats.LastEventPath = event.Name
	w.stats.LastEventTime = time.Now()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processSettled() {
	w.mu.Lock()
	now := time.Now()
	var toProcess []string
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			toProcess = append(toProcess, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range toProcess {
		w.reload(path)
	}
}

// reload applies one settled manifest change to the registry. A file
// that disappeared is ignored rather than unregistering the handler:
// the in-memory handler keeps serving until a replacement arrives.
func (w *Watcher) reload(path string) {
	if _, err := os.Stat(path); err != nil {
		logging.PluginsDebug("watcher: %s removed, keeping in-memory handler", filepath.Base(path))
		w.mu.Lock()
		w.stats.Removals++
		w.mu.Unlock()
		return
	}

	spec, err := LoadSpecFile(path)
	if err != nil {
		logging.PluginsWarn("watcher: %s not reloaded: %v", filepath.Base(path), err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	h := domain.NewRuleHandler(spec)
	if w.registry.Has(spec.DomainName) {
		err = w.registry.Replace(h)
	} else {
		err = w.registry.Register(h)
	}
	if err != nil {
		logging.PluginsError("watcher: %s: %v", spec.DomainName, err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	logging.Plugins("watcher: reloaded handler %s from %s", spec.DomainName, filepath.Base(path))
	w.mu.Lock()
	w.stats.Reloads++
	w.mu.Unlock()
}
