package gridmap

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/gridstar/grid"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
// Each new event for the file restarts the wait, so the last save wins.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports layout files (.yaml, .yml) that were written, created,
// renamed or removed in the watched directories.
//
// Events carries file paths. Errors carries watcher failures. Both channels
// are closed by Close.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	Events   chan string
	Errors   chan error
	fire     chan string
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher starts watching dirs.
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherDebounce(DefaultDebounce, dirs...)
}

// NewWatcherDebounce is NewWatcher with a custom debounce window.
// A window of 0 forwards every event as it arrives.
func NewWatcherDebounce(debounce time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		fire:     make(chan string),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isLayoutFile(event.Name) {
				continue
			}
			if w.debounce <= 0 {
				if !w.emit(event.Name) {
					return
				}
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(w.debounce)
				continue
			}
			name := event.Name
			pending[name] = time.AfterFunc(w.debounce, func() {
				select {
				case w.fire <- name:
				case <-w.closeCh:
				}
			})
		case name := <-w.fire:
			delete(pending, name)
			if !w.emit(name) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			default:
				// a failure is already pending
			}
		case <-w.closeCh:
			return
		}
	}
}

// emit reports false once the watcher is closing.
func (w *Watcher) emit(name string) bool {
	select {
	case w.Events <- name:
		return true
	case <-w.closeCh:
		return false
	}
}

func isLayoutFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Reload loads the layout at path and applies it to g. g is left unchanged
// if the file is missing, malformed or of a different size.
func Reload(path string, g *grid.Grid) (*Layout, error) {
	l, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Apply(g); err != nil {
		return nil, err
	}
	return l, nil
}
