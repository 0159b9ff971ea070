package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watch calls fn once and then again after every change to path, until ctx
// is cancelled. Bursts of events closer together than debounce trigger a
// single call. Errors returned by fn are logged and do not stop the watch.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file through a rename are still seen.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func() error) error {
	logger := Logger(ctx)

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	run := func() {
		if err := fn(); err != nil {
			logger.Error("render failed", "file", path, "error", err)
		}
	}
	run()
	logger.Info("watching for changes", "file", path, "debounce", debounce)

	changes := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return watchEvents(egctx, watcher, target, debounce, changes)
	})

	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-changes:
				logger.Debug("change detected", "file", path)
				run()
			}
		}
	})

	return eg.Wait()
}

// watchEvents forwards debounced changes to target onto changes. A pending
// notification is never queued twice.
func watchEvents(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, changes chan<- struct{}) error {
	logger := Logger(ctx)

	var timer *time.Timer
	var fire <-chan time.Time

	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce <= 0 {
				notify()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			notify()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
