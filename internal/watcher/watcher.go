// Package watcher reports changes to the transactions data file with
// debouncing. Notifications are published on a pubsub broker so the
// dashboard can reload without polling.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/pubsub"
)

// Change is the payload of every event the watcher publishes.
type Change struct {
	Path string
}

// Watcher monitors a data file and publishes ChangedEvent or RemovedEvent
// once per burst of file system activity.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	broker    *pubsub.Broker[Change]
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Path     string
	Debounce time.Duration
}

// DefaultConfig returns the default debounce for path.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		Debounce: 100 * time.Millisecond,
	}
}

// New creates a watcher for cfg.Path. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(cfg.Path),
		debounce:  cfg.Debounce,
		broker:    pubsub.NewBroker[Change](),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker change events are published on.
func (w *Watcher) Broker() *pubsub.Broker[Change] {
	return w.broker
}

// Start begins watching the directory containing the data file. Editors and
// SQLite replace or journal files next to the original, so the directory is
// watched rather than the file itself.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	log.Debug(log.CatWatcher, "Watching data file", "path", w.path, "debounce", w.debounce)
	go w.loop()
	return nil
}

// Stop terminates the watcher, closes the broker and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.broker.Close()
	return err
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending pubsub.EventType
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			kind, relevant := w.classify(event)
			if !relevant {
				continue
			}
			pending = kind

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending != "" {
				log.Debug(log.CatWatcher, "Data file event", "type", string(pending), "path", w.path)
				w.broker.Publish(pending, Change{Path: w.path})
				pending = ""
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watcher error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// classify maps a file system event to the event type it should publish.
// The data file itself and its SQLite journal files are relevant; a remove
// or rename of the data file is a removal, anything else that writes is a
// change.
func (w *Watcher) classify(event fsnotify.Event) (pubsub.EventType, bool) {
	name := filepath.Clean(event.Name)
	switch name {
	case w.path:
		if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
			return pubsub.RemovedEvent, true
		}
	case w.path + "-wal", w.path + "-journal":
	default:
		return "", false
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return "", false
	}
	return pubsub.ChangedEvent, true
}
