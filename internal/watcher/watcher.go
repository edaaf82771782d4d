// Package watcher monitors a content root and reports which kinds changed.
//
// It is used by `awchub serve --watch` to invalidate cached collections and
// push reloads to connected browsers.
package watcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/awc-hub/awchub/internal/content"
)

// Watcher monitors a content directory for changes.
type Watcher struct {
	root string

	// Configuration
	debounceDelay time.Duration
	logger        *slog.Logger

	// Internal state
	fsWatcher *fsnotify.Watcher
	pending   map[content.Kind]time.Time
	mu        sync.Mutex

	// Callbacks
	onChange func(kind content.Kind)
}

// Config holds configuration options for the Watcher.
type Config struct {
	ContentDir    string
	DebounceDelay time.Duration // Default: 100ms
	Logger        *slog.Logger
	OnChange      func(kind content.Kind)
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.ContentDir == "" {
		return nil, fmt.Errorf("content directory is required")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("change callback is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Watcher{
		root:          cfg.ContentDir,
		debounceDelay: debounce,
		logger:        logger,
		pending:       make(map[content.Kind]time.Time),
		onChange:      cfg.OnChange,
	}, nil
}

// Start begins watching the content root for file changes.
// It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.fsWatcher.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	for _, kind := range content.Kinds {
		w.addKindDir(kind)
	}

	w.logger.Debug("watching content", "dir", w.root)

	go w.processDebounced(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// addKindDir watches a kind directory if it exists.
func (w *Watcher) addKindDir(kind content.Kind) {
	dir := filepath.Join(w.root, kind.Dir())
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.logger.Warn("failed to watch directory", "dir", dir, "error", err)
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	kind, ok := content.KindForPath(w.root, event.Name)
	if !ok {
		return
	}

	w.logger.Debug("content event", "op", event.Op.String(), "path", event.Name, "kind", kind)

	// A kind directory appeared after startup.
	if filepath.Dir(event.Name) == filepath.Clean(w.root) && event.Has(fsnotify.Create) {
		w.addKindDir(kind)
	}

	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	w.schedule(kind)
}

// schedule adds a kind to the pending queue with debouncing.
func (w *Watcher) schedule(kind content.Kind) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[kind] = time.Now()
}

// processDebounced reports pending kinds after the debounce delay.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending()
		}
	}
}

// processPending reports kinds whose last event is older than the debounce delay.
func (w *Watcher) processPending() {
	w.mu.Lock()
	now := time.Now()
	ready := make([]content.Kind, 0)

	for kind, scheduledAt := range w.pending {
		if now.Sub(scheduledAt) >= w.debounceDelay {
			ready = append(ready, kind)
			delete(w.pending, kind)
		}
	}
	w.mu.Unlock()

	for _, kind := range ready {
		w.logger.Info("content changed", "kind", kind)
		w.onChange(kind)
	}
}
