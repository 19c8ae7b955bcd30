// © 2025 The Osmo Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assets

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var (
	watchReadyHook func() // used in tests, called when Watch started watching
	regenerateHook func() // used in tests, called after each regeneration
)

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{d: d, f: f}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

// Watch generates assets and regenerates them every time the source image
// changes, until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial generation")
	if err := Generate(c); err != nil {
		logger.Error(ctx, "initial generation failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace files on save,
	// which drops a watch on the file itself.
	src := filepath.Clean(c.Src)
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		return err
	}

	// Regeneration runs only on this goroutine. The debouncer marks it due.
	due := make(chan struct{}, 1)
	debouncer := newDebouncer(250*time.Millisecond, func() {
		select {
		case due <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	logger.Info(ctx, "started watching for changes", slog.String("src", src))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != src || !shouldRegenerate(event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case <-due:
			logger.Info(ctx, "regenerating assets")
			if err := Generate(c); err != nil {
				logger.Error(ctx, "failed to regenerate assets", slog.Any("err", err))
			}
			if regenerateHook != nil {
				regenerateHook()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher error", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

// Adapted from
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldRegenerate(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	if base == ".DS_Store" {
		return false
	}

	// Vim probes directories for writability with this file.
	if base == "4913" {
		return false
	}

	if strings.HasSuffix(base, "~") {
		return false
	}

	// Removal leaves nothing to regenerate from; renames are followed by a
	// create. Chmod doesn't change pixels.
	return op&(fsnotify.Create|fsnotify.Write) != 0
}
