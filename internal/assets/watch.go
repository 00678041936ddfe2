package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events an editor save produces.
const debounce = 100 * time.Millisecond

// ErrNotWatchable is returned by Watch for the embedded file set.
var ErrNotWatchable = errors.New("assets: embedded files cannot be watched")

// Watch refreshes fingerprints whenever a file in the static dir changes,
// until ctx ends. Only the top-level directory is watched.
func (a *Assets) Watch(ctx context.Context) error {
	if a.dir == "" {
		return ErrNotWatchable
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(a.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", a.dir, err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				a.logger.Debug("Static asset changed", "file", ev.Name, "op", ev.Op.String())
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if err := a.Refresh(); err != nil {
					a.logger.Error("Failed to refresh static assets", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				a.logger.Warn("Static asset watcher error", "error", err)
			}
		}
	}()

	a.logger.Info("Watching static assets", "dir", a.dir)
	return nil
}
