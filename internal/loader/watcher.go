package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

type reloader interface {
	Reload(ctx context.Context) (*domain.ValidationReport, error)
}

// Watcher observes the content category directories and funnels settled
// changes into a single reload. Rapid bursts of file events (editors,
// rsync, the store's own write-through) coalesce within the debounce
// window; the reload path stays the only state-reset mechanism.
type Watcher struct {
	log      *slog.Logger
	reloader reloader
	debounce time.Duration
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	pending time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher over the given directories. The
// directories must exist; the store's load creates them.
func NewWatcher(log *slog.Logger, rel reloader, dirs []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return &Watcher{
		log:      log.With("service", "watcher"),
		reloader: rel,
		debounce: debounce,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine. Calling Start on a
// running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.log.Info("content watcher started", "dirs", w.fsw.WatchList(), "debounce", w.debounce)
	go w.run(ctx)
}

// Stop shuts the watcher down and waits for the event loop to exit.
// Safe to call on a watcher that was never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.fsw.Close(); err != nil {
		w.log.Warn("closing fs watcher", "error", err)
	}
	w.log.Info("content watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("fs watcher error", "error", err)

		case <-ticker.C:
			w.maybeReload(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".json") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.log.Debug("content file changed", "path", event.Name, "op", event.Op.String())
	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

// maybeReload fires one reload once the last event has settled past the
// debounce window.
func (w *Watcher) maybeReload(ctx context.Context) {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if _, err := w.reloader.Reload(ctx); err != nil {
		w.log.Error("watch-triggered reload failed", "error", err)
		return
	}
	w.log.Info("content reloaded after directory change")
}
