package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports YAML files that changed on disk so tuning can be reloaded
// between ticks. Events carry the changed file path and arrive once the file
// has seen no writes for the debounce interval.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories.
func NewWatcher(dirs ...string) (*Watcher, error) {
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
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	// A path is reported once it has been quiet for the debounce interval,
	// so multi-step saves are announced after their last write.
	timers := make(map[string]*time.Timer)
	settled := make(chan string)

	defer func() {
		for _, t := range timers {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(debounce)
				continue
			}
			name := event.Name
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(timers, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
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

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
