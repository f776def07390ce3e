// Package watcher reports debounced changes to individual files.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes and triggers callbacks.
//
// The parent directory of every file is watched rather than the file itself,
// so saves that replace the file through a rename are still seen.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
	closed    bool

	// OnError receives errors reported by the underlying watcher. When nil
	// they are dropped.
	OnError func(error)
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch starts watching the specified files.
// callback is called with the absolute path when any of them change.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if _, exists := fw.callbacks[absPath]; !exists {
			dir := filepath.Dir(absPath)
			if fw.dirs[dir] == 0 {
				if err := fw.watcher.Add(dir); err != nil {
					return fmt.Errorf("failed to watch %s: %w", dir, err)
				}
			}
			fw.dirs[dir]++
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins delivering events on a new goroutine until ctx is done or
// the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.Run(ctx)
}

// Run delivers events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if fw.OnError != nil {
				fw.OnError(err)
			}
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}

	filePath = filepath.Clean(filePath)
	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher and cancels pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for dir := range fw.dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return err
		}
	}
	for _, timer := range fw.timers {
		timer.Stop()
	}

	fw.callbacks = make(map[string]func(string))
	fw.dirs = make(map[string]int)
	fw.timers = make(map[string]*time.Timer)
	return nil
}
