// Package watch regenerates a project whenever its Files folder changes.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the bursts of events an editor save produces.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc performs one regeneration.
type RunFunc func(ctx context.Context) error

// Stats counts watcher activity.
type Stats struct {
	Events        int
	Runs          int
	Failures      int
	LastEventPath string
	LastEventTime time.Time
}

// Watcher watches a directory tree and calls its RunFunc once the tree has
// been quiet for the debounce interval. Runs never overlap: they execute on the
// event loop goroutine.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	run      RunFunc
	debounce time.Duration
	pending  bool
	lastSeen time.Time
	stats    Stats
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New returns a Watcher for dir. A debounce of zero uses DefaultDebounce.
func New(dir string, debounce time.Duration, run RunFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		run:      run,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers dir and every directory below it, then starts the event loop.
// It does not block. A failed Start releases the watcher; the Watcher cannot be reused.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		return err
	}
	slog.Info("watching for changes", "dir", w.dir, "debounce", w.debounce)

	go w.loop(ctx)
	return nil
}

// Stop ends the event loop, waits for a run in progress and releases the watcher.
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
		slog.Error("failed to close watcher", "error", err)
	}
}

// Done is closed when the event loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		slog.Debug("watching directory", "dir", path)
		return nil
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(tickInterval(w.debounce))
	defer ticker.Stop()

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
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

// minTick keeps the settle check from spinning on tiny debounce values.
const minTick = time.Millisecond

// tickInterval is how often the loop checks whether the tree has settled.
func tickInterval(debounce time.Duration) time.Duration {
	return max(debounce/4, minTick)
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	// new subdirectories must be watched too, including whatever was
	// already copied into them
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				slog.Warn("failed to watch new directory", "dir", event.Name, "error", err)
			}
		}
	}

	slog.Debug("file event", "op", event.Op.String(), "path", event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = true
	w.lastSeen = time.Now()
	w.stats.Events++
	w.stats.LastEventPath = event.Name
	w.stats.LastEventTime = w.lastSeen
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastSeen) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	err := w.run(ctx)

	w.mu.Lock()
	w.stats.Runs++
	if err != nil {
		w.stats.Failures++
	}
	w.mu.Unlock()

	if err != nil {
		slog.Warn("regeneration failed, waiting for the next change", "error", err)
	}
}
