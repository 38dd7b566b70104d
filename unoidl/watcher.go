package unoidl

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
)

// ChangeCallback is called, debounced, after one of the watched schema files changed.
// Calls never overlap.
type ChangeCallback func(changed string) error

// Watcher watches schema files and triggers a callback when any of them changes
type Watcher struct {
	files          map[string]bool
	watcher        *fsnotify.Watcher
	callback       ChangeCallback
	log            *zap.SugaredLogger
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration

	// running is set while a callback executes; a change arriving meanwhile
	// is parked in pending and handled once the callback returns
	running bool
	pending string
}

// NewWatcher creates a watcher for the given schema files.
// Parent directories are watched so that editors replacing a file are noticed.
func NewWatcher(paths []string, callback ChangeCallback) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:          make(map[string]bool, len(paths)),
		watcher:        fw,
		callback:       callback,
		log:            logger.ComponentLogger("unoidl.watcher"),
		debouncePeriod: 300 * time.Millisecond,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}

	return w, nil
}

// SetDebounce overrides the debounce period
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// Run monitors file system events until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.mu.Unlock()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isWatched(event.Name) {
				continue
			}
			// Only Write, Create and Rename matter; chmod noise is ignored
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debugw("Schema watcher detected change",
				logger.FieldSchema, event.Name,
				"op", event.Op.String())
			w.schedule(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Schema watcher error",
				logger.FieldError, err)
		}
	}
}

func (w *Watcher) isWatched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// schedule debounces rapid file changes and triggers the callback
func (w *Watcher) schedule(changed string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.fire(changed)
	})
}

// fire runs the callback unless one is already running, in which case the
// change is handed to the running loop. Changes that pile up while a callback
// runs collapse into one further call with the latest file.
func (w *Watcher) fire(changed string) {
	w.mu.Lock()
	if w.running {
		w.pending = changed
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	for {
		if err := w.callback(changed); err != nil {
			w.log.Errorw("Schema change callback failed",
				logger.FieldSchema, changed,
				logger.FieldError, err)
		}

		w.mu.Lock()
		if w.pending == "" {
			w.running = false
			w.mu.Unlock()
			return
		}
		changed, w.pending = w.pending, ""
		w.mu.Unlock()
	}
}
