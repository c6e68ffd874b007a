package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/ontolex/loader"
)

// defaultDebounceDelay is how long the watcher waits for further
// changes before rebuilding. Editors often write several events per
// save.
const defaultDebounceDelay = 500 * time.Millisecond

// RebuildFunc loads and finalizes a fresh snapshot from the declaration
// sources. It must be all-or-nothing: on error the watcher keeps the
// previous snapshot serving.
type RebuildFunc func() (*loader.Snapshot, error)

// Watcher reloads a server's snapshot when declaration files change.
type Watcher struct {
	server   *Server
	rebuild  RebuildFunc
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the base directories of the given doublestar
// patterns. Glob suffixes are stripped; fsnotify watches directories,
// and the rebuild re-expands the full patterns anyway.
func NewWatcher(s *Server, patterns []string, rebuild RebuildFunc, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(pattern)
		if err := fw.Add(base); err != nil {
			_ = fw.Close()
			return nil, err
		}
		logger.Debug("watching declaration sources", slog.String("dir", base))
	}
	return &Watcher{
		server:   s,
		rebuild:  rebuild,
		watcher:  fw,
		logger:   logger,
		debounce: defaultDebounceDelay,
	}, nil
}

// Start processes file events until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload rebuilds the snapshot and swaps it in. A failed rebuild is
// logged and counted; the active snapshot stays untouched.
func (w *Watcher) reload() {
	snap, err := w.rebuild()
	if err != nil {
		w.server.metrics.ReloadsTotal.WithLabelValues("failure").Inc()
		w.logger.Error("snapshot rebuild failed, keeping previous snapshot",
			slog.String("error", err.Error()))
		return
	}
	w.server.swap(snap)
	w.server.metrics.ReloadsTotal.WithLabelValues("success").Inc()
	w.logger.Info("snapshot reloaded",
		slog.String("snapshot_id", snap.ID),
		slog.Int("classes", len(snap.Taxonomy.Classes())))
}
