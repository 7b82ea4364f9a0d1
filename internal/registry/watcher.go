package registry

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"priced/pkg/types"
)

// Watcher keeps a cached artifact listing for a models directory, refreshed
// through fsnotify when the directory changes. If the watch cannot be
// established the Watcher degrades to a scan per Models call.
type Watcher struct {
	dir string
	log zerolog.Logger

	mu     sync.RWMutex
	cached []types.ModelFile

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher scans dir once and starts watching it for changes. The initial
// scan error is returned; a failed watch is only logged.
func NewWatcher(dir string, log zerolog.Logger) (*Watcher, error) {
	models, err := Scan(dir)
	if err != nil {
		return nil, err
	}
	w := &Watcher{dir: dir, log: log, cached: models, done: make(chan struct{})}

	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		err = fsw.Add(dir)
	}
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("models dir watch unavailable, falling back to scan per request")
		if fsw != nil {
			_ = fsw.Close()
		}
		return w, nil
	}
	w.fsw = fsw
	go w.loop()
	return w, nil
}

// Models returns the current artifact listing, newest first.
func (w *Watcher) Models() []types.ModelFile {
	if w.fsw == nil {
		models, err := Scan(w.dir)
		if err != nil {
			w.log.Error().Err(err).Str("dir", w.dir).Msg("models dir scan failed")
			return nil
		}
		return models
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]types.ModelFile(nil), w.cached...)
}

// Close stops the directory watch.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.refresh()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("models dir watch error")
		}
	}
}

func (w *Watcher) refresh() {
	models, err := Scan(w.dir)
	if err != nil {
		w.log.Error().Err(err).Str("dir", w.dir).Msg("models dir rescan failed")
		return
	}
	w.mu.Lock()
	w.cached = models
	w.mu.Unlock()
}
