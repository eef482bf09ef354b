package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	changeChannelBuffer = 16
	debounceWindow      = 200 * time.Millisecond
)

// Watcher implements ports.Watcher for a single configuration file using
// fsnotify. Editors replace files via temporary files and renames, so the
// watch is placed on the containing directory and events are filtered down
// to the target path.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan string

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fw,
		changes:   make(chan string, changeChannelBuffer),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.emit)
	return w, nil
}

// Start begins watching the file at the given path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	go w.processEvents(ctx, abs)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Changes returns an iterator yielding the watched path once per coalesced
// change.
func (w *Watcher) Changes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.changes {
			if !yield(path) {
				return
			}
		}
	}
}

// emit is the debouncer callback. It may race with shutdown, so delivery
// into the closed channel is guarded.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	for _, p := range paths {
		select {
		case w.changes <- p:
		default:
			// A pending change is already queued; dropping this one loses
			// nothing since the payload is identical.
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, path string) {
	defer func() {
		w.mu.Lock()
		w.closed = true
		close(w.changes)
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debouncer.Add(path)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
