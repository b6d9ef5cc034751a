package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/chordbar/internal/logging"
)

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// WatchFiles calls onChange with the changed path whenever one of paths is
// written or replaced, until ctx is done. Bursts of events within debounce
// are coalesced into one call.
//
// Parent directories are watched rather than the files, so editors that save
// by renaming a temporary file are still seen.
func WatchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func(path string)) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close file watcher")
		}
	}()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !targets[name] || ev.Op&watchOps == 0 {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Str("file", name).Msg("fsnotify change detected")
			pending = name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange(pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
