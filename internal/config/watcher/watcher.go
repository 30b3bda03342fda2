// Package watcher reloads the stride configuration when its file changes.
//
// The watcher observes the directory that holds the configuration file,
// so editors that replace the file through a rename are still noticed.
// Bursts of events are debounced into a single reload.
package watcher

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/dshills/stride/internal/config"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// LoadFunc loads the configuration at path.
type LoadFunc func(path string) (*config.Config, error)

// Watcher monitors one configuration file.
type Watcher struct {
	mu sync.Mutex

	path string
	base string

	fsw      *fsnotify.Watcher
	load     LoadFunc
	onChange func(*config.Config)
	debounce time.Duration
	logger   *log.Logger

	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for reload failures.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithLoader replaces the function used to re-read the file.
func WithLoader(fn LoadFunc) Option {
	return func(w *Watcher) {
		if fn != nil {
			w.load = fn
		}
	}
}

// New starts watching path. onChange receives every configuration that
// loads and validates after a change; failed reloads are logged and the
// previous configuration stays in effect.
func New(path string, onChange func(*config.Config), opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		base:     filepath.Base(absPath),
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		logger:   log.New(io.Discard),
		closeCh:  make(chan struct{}),
		load: func(p string) (*config.Config, error) {
			return config.Load(p, false)
		},
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending reloads are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.base || !relevant(ev.Op) {
				continue
			}
			w.logger.Debug("config file changed", "path", ev.Name, "op", ev.Op.String())
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "err", err)
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}

// schedule arms or re-arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := w.load(w.path)
	if err != nil {
		w.logger.Error("config reload failed", "path", w.path, "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
