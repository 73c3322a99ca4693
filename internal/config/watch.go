package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/dogemark/internal/logger"
)

// Watcher reloads a config file whenever it changes on disk and delivers
// each valid result on Updates. Invalid edits are reported on Errors and
// otherwise ignored, so the last good config stays in effect.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan *Config
	errors  chan error
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched rather than
// the file itself so editors that save by rename keep triggering reloads.
func Watch(path string) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("config: no file to watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		updates: make(chan *Config, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates delivers freshly loaded configs. Only the latest pending value
// is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers load and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.updates)
		close(w.errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				logger.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
				w.sendError(err)
				continue
			}
			logger.Debug("config reloaded", zap.String("path", w.path))
			w.sendUpdate(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Error("config watcher", zap.Error(err))
			w.sendError(err)

		case <-w.done:
			return
		}
	}
}

// sendUpdate replaces any undelivered config with cfg.
func (w *Watcher) sendUpdate(cfg *Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
