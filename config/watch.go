package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const kindReloadDebounce = 100 * time.Millisecond

// KindWatcher reports writes to an agent kinds file. It only signals; the
// simulation goroutine reloads and applies the file with LoadAgentKinds and
// SetKinds so agent tunables never change mid-tick.
type KindWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changed chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchKinds watches the directory containing path, since editors often
// replace files instead of writing them in place.
func WatchKinds(path string) (*KindWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	kw := &KindWatcher{
		watcher: w,
		path:    abs,
		Changed: make(chan string, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go kw.run()
	return kw, nil
}

func (w *KindWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Poll returns true once per pending change without blocking.
func (w *KindWatcher) Poll() bool {
	select {
	case <-w.Changed:
		return true
	default:
		return false
	}
}

func (w *KindWatcher) run() {
	defer close(w.done)
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < kindReloadDebounce {
				continue
			}
			last = now
			select {
			case w.Changed <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
