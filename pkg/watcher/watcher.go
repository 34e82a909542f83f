package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TreeWatcher watches a directory tree and triggers a debounced callback
// when a matching file changes
type TreeWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	match    func(string) bool
	debounce time.Duration
	timer    *time.Timer
	changed  map[string]struct{}

	// OnError receives errors reported by the underlying watcher
	OnError func(error)
}

// NewTreeWatcher creates a watcher. match selects the files of interest.
func NewTreeWatcher(debounce time.Duration, match func(string) bool) (*TreeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &TreeWatcher{
		watcher:  watcher,
		match:    match,
		debounce: debounce,
		changed:  make(map[string]struct{}),
		OnError:  func(error) {},
	}, nil
}

// Watch adds root and every directory below it
func (tw *TreeWatcher) Watch(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := tw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// Start begins delivering changes. callback receives the changed files of
// one burst, once the tree has been quiet for the debounce interval.
func (tw *TreeWatcher) Start(callback func(changed []string)) {
	go func() {
		for {
			select {
			case event, ok := <-tw.watcher.Events:
				if !ok {
					return
				}
				tw.handleEvent(event, callback)

			case err, ok := <-tw.watcher.Errors:
				if !ok {
					return
				}
				tw.OnError(err)
			}
		}
	}()
}

func (tw *TreeWatcher) handleEvent(event fsnotify.Event, callback func([]string)) {
	// New directories are watched as they appear
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := tw.Watch(event.Name); err != nil {
				tw.OnError(err)
			}
		}
	}

	if !tw.match(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.changed[event.Name] = struct{}{}
	if tw.timer != nil {
		tw.timer.Stop()
	}
	tw.timer = time.AfterFunc(tw.debounce, func() {
		callback(tw.drain())
	})
}

func (tw *TreeWatcher) drain() []string {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	changed := make([]string, 0, len(tw.changed))
	for path := range tw.changed {
		changed = append(changed, path)
	}
	tw.changed = make(map[string]struct{})
	sort.Strings(changed)
	return changed
}

// Close stops the watcher
func (tw *TreeWatcher) Close() error {
	tw.mu.Lock()
	if tw.timer != nil {
		tw.timer.Stop()
	}
	tw.mu.Unlock()
	return tw.watcher.Close()
}
