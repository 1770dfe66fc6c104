package server

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the content file when it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	file     string
	onReload func() error
	logger   *zap.Logger
	done     chan struct{}
	exited   chan struct{}
}

// NewWatcher watches file. The parent directory is watched rather than the
// file itself, so editors that save by renaming a temp file still trigger a
// reload.
func NewWatcher(file string, onReload func() error, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fsWatcher,
		file:     abs,
		onReload: onReload,
		logger:   logger,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	go func() {
		defer close(w.exited)
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.file {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if err := w.onReload(); err != nil {
					w.logger.Warn("content reload failed, keeping previous content",
						zap.String("file", w.file), zap.Error(err))
					continue
				}
				w.logger.Info("content reloaded", zap.String("file", w.file))

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watch error", zap.Error(err))

			case <-w.done:
				return
			}
		}
	}()
}

// Stop stops the watcher and waits for its goroutine to exit. Stop must
// only be called after Start.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.watcher.Close()
	<-w.exited
	return err
}
