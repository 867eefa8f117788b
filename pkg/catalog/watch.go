package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/platinummonkey/aminoapi/pkg/observability"
)

type watchOptions struct {
	debounce time.Duration
}

func defaultWatchOptions() watchOptions {
	return watchOptions{debounce: 250 * time.Millisecond}
}

// WithDebounce sets how long Watch waits after the last file event before reloading
func WithDebounce(d time.Duration) Option {
	return func(c *Catalog) {
		c.watch.debounce = d
	}
}

// Watch reloads the dataset whenever its file is written, created or renamed
// into place, until ctx is done. The parent directory is watched so that
// editors which replace the file atomically are picked up.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.source.Path == "" {
		return ErrNotWatchable
	}

	target, err := filepath.Abs(c.source.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	defer observability.RecoverPanic(c.logger, "dataset watcher")
	c.logger.Info("Watching dataset for changes")

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			c.logger.WithField("op", event.Op.String()).Debug("Dataset file changed")
			if timer == nil {
				timer = time.NewTimer(c.watch.debounce)
			} else {
				timer.Reset(c.watch.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.WithError(err).Warn("Dataset watcher error")

		case <-fire:
			fire = nil
			// Reload logs its own failures and keeps the previous table.
			_ = c.Reload()
		}
	}
}
