package feed

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the calendar when a source file changes on disk.
// Events are debounced so an editor's burst of writes triggers one
// reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(string)
	mu       sync.RWMutex
	done     chan struct{}
}

const debounceDelay = 100 * time.Millisecond

// NewWatcher starts a watcher calling onChange with the changed path.
func NewWatcher(onChange func(string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		files:    make(map[string]bool),
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

// Watch adds paths to the watch set. Paths that do not exist yet are
// skipped silently; callers re-add after creating them.
func (w *Watcher) Watch(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if w.files[abs] {
			continue
		}
		if err := w.watcher.Add(abs); err != nil {
			continue
		}
		w.files[abs] = true
	}
	return nil
}

func (w *Watcher) run() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}
			name := event.Name
			debounce[name] = time.AfterFunc(debounceDelay, func() {
				w.mu.RLock()
				watching := w.files[name]
				w.mu.RUnlock()
				if watching && w.onChange != nil {
					w.onChange(name)
				}
			})

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
