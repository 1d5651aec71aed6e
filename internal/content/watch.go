package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads an on-disk content document into a Store whenever the file
// changes. A document that fails to parse or validate is logged and ignored;
// the previous content keeps being served.
type Watcher struct {
	path     string
	store    *Store
	logger   *slog.Logger
	debounce time.Duration

	// OnReload, when set, is called after every successful swap.
	OnReload func(*Content)
}

// NewWatcher creates a watcher for path feeding store.
func NewWatcher(path string, store *Store, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     path,
		store:    store,
		logger:   logger.With("component", "content-watcher", "path", path),
		debounce: defaultDebounce,
	}
}

// Run watches until ctx is done. The parent directory is watched rather than
// the file itself so editors that write via rename are picked up.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.logger.Info("watching content for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	c, err := LoadFile(w.path)
	if err != nil {
		w.logger.Error("content reload rejected", "error", err)
		return
	}
	w.store.Swap(c)
	w.logger.Info("content reloaded", "projects", len(c.Projects), "services", len(c.Services))
	if w.OnReload != nil {
		w.OnReload(c)
	}
}
