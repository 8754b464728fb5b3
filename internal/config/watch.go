package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a Watcher waits after the last change before
// reloading.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc is called with the reloaded configuration, or with the error
// that prevented loading it.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file whenever it changes on disk.
//
// The file's directory is watched rather than the file, so editors that
// save by renaming a temporary file over the original are still seen.
type Watcher struct {
	mu     sync.Mutex
	closed bool

	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	load     func() (*Config, error)
	onReload ReloadFunc

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLoader replaces the function that rebuilds the configuration. The
// default is Load on the watched path.
func WithLoader(fn func() (*Config, error)) WatchOption {
	return func(w *Watcher) {
		if fn != nil {
			w.load = fn
		}
	}
}

// Watch starts watching the file at path. onReload runs on the watcher's
// goroutine; it must not block for long.
func Watch(path string, onReload ReloadFunc, opts ...WatchOption) (*Watcher, error) {
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
		fsw:      fsw,
		path:     abs,
		debounce: DefaultDebounce,
		onReload: onReload,
		closeCh:  make(chan struct{}),
	}
	w.load = func() (*Config, error) { return Load(path) }
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. It waits for a reload in progress to finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onReload(nil, err)

		case <-fire:
			fire = nil
			w.onReload(w.load())
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
