package provision

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher monitors a texture tree and invokes a callback when files or
// directories are removed or renamed away. Rapid successive changes are
// debounced into a single callback. Creations and writes are ignored, so the
// callback re-creating textures does not trigger itself.
type Watcher struct {
	root     string
	onChange func()
	debounce time.Duration
	log      logrus.FieldLogger
	watcher  *fsnotify.Watcher
	ready    chan struct{}
	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex // serialises onChange
}

// NewWatcher creates a Watcher for the tree rooted at root. The onChange
// callback runs after removals have been quiet for debounce.
func NewWatcher(root string, debounce time.Duration, log logrus.FieldLogger, onChange func()) *Watcher {
	return &Watcher{
		root:     root,
		onChange: onChange,
		debounce: debounce,
		log:      log,
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Ready is closed once the initial watches are in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Start begins watching the tree. It blocks until Stop is called or a fatal
// error occurs. The root must exist.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fsw

	// fsnotify does not watch recursively, so every category directory is
	// added individually.
	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return err
	}
	close(w.ready)

	var timer *time.Timer
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			// New directories need their own watch; nothing else to do.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.log.WithFields(logrus.Fields{
							"path":  event.Name,
							"error": err,
						}).Warn("failed to watch directory")
					}
				}
				continue
			}

			if event.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.WithField("path", event.Name).Debug("texture tree changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.fire)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithField("error", err).Warn("watcher error")

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			// Wait out a callback already in flight.
			w.mu.Lock()
			defer w.mu.Unlock()
			return fsw.Close()
		}
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange()

	// Removing the root drops its watch, and directories the callback
	// recreated appeared under an unwatched parent.
	if err := w.addRecursive(w.root); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		w.log.WithFields(logrus.Fields{
			"path":  w.root,
			"error": err,
		}).Warn("failed to rewatch texture tree")
	}
}

// Stop signals the watcher to stop monitoring files.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
	})
}

// addRecursive adds a directory and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return err
			}
		}
		return nil
	})
}
