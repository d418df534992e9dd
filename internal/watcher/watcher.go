// Package watcher reports changes to a single file on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change observed.
type Op string

// Forwarded operations.
const (
	OpWrite  Op = "write"
	OpCreate Op = "create"
)

// Event is one observed change to the watched file.
type Event struct {
	Path string
	Op   Op
}

// Watcher watches the directory holding a file and forwards writes and
// creations of that file. Watching the directory keeps the watch alive
// across editors that save by renaming a temporary file into place.
type Watcher struct {
	path   string
	fs     *fsnotify.Watcher
	events chan Event
	logger *slog.Logger
}

// New starts watching path. The file itself need not exist yet, its
// directory must.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:   abs,
		fs:     fw,
		events: make(chan Event, 16),
		logger: logger,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel events are delivered on. It is closed when Run
// returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run forwards events until ctx is cancelled or the underlying watcher is
// closed. Watcher errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			var op Op
			switch {
			case event.Has(fsnotify.Create):
				op = OpCreate
			case event.Has(fsnotify.Write):
				op = OpWrite
			default:
				continue
			}
			w.logger.Debug("schema file changed", "path", w.path, "op", op)

			select {
			case w.events <- Event{Path: w.path, Op: op}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Close stops watching. Run returns once the underlying channels drain.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
