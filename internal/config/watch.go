package config

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan BrickerConfig
	done    chan struct{}
	once    sync.Once
	logger  *log.Logger
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still noticed.
func Watch(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fsWatch,
		updates: make(chan BrickerConfig, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates delivers freshly loaded configs. Only the latest unread one is kept.
// The channel is closed after Close.
func (w *Watcher) Updates() <-chan BrickerConfig { return w.updates }

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *Watcher) run() {
	defer close(w.updates)
	defer w.fs.Close()

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "err", err)
				continue
			}
			w.logger.Info("config reloaded", "path", w.path)
			w.publish(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) publish(cfg BrickerConfig) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
