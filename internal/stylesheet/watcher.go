package stylesheet

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watcher watches a single stylesheet and calls onChange after it was written or
// recreated. The parent directory is watched, editors often save by renaming a
// temporary file over the original.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string)

	mu   sync.Mutex
	path string
	dir  string

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher creates a watcher. Call Watch to select the stylesheet.
func NewWatcher(onChange func(path string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.watchChanges()

	return w, nil
}

// Watch switches the watched stylesheet to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		path = filepath.Clean(path)
	}
	if path == w.path {
		return nil
	}

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}

	if dir != w.dir {
		if w.dir != "" {
			if err := w.watcher.Remove(w.dir); err != nil {
				log.Printf("Failed to stop watching %s: %v", w.dir, err)
			}
		}
		w.dir = ""
		if dir != "" {
			if err := w.watcher.Add(dir); err != nil {
				w.path = ""
				return err
			}
			w.dir = dir
		}
	}

	w.path = path
	return nil
}

// Path returns the watched stylesheet
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) watchChanges() {
	defer w.wg.Done()

	debounceTimer := time.NewTimer(time.Hour)
	debounceTimer.Stop()
	pending := ""

	for {
		select {
		case <-w.done:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			path := w.Path()
			if path == "" || filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.Printf("Stylesheet changed: %s", event.Name)
			pending = path

			// Reset the debounce timer
			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(watchDebounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)

		case <-debounceTimer.C:
			if pending != "" && pending == w.Path() {
				w.onChange(pending)
			}
			pending = ""
		}
	}
}

// Close stops the watcher and waits for the event loop to exit
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
