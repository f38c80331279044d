package watch

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// SyncFunc runs one sync pass against the current source snapshot.
type SyncFunc func(ctx context.Context) error

// Watcher polls the source file's modification timestamp and triggers a
// sync pass whenever it changes. The loop has two states, idle and
// syncing, and never runs more than one pass at a time: a file change
// observed while a pass is in flight is simply picked up by the next poll.
type Watcher struct {
	// Path is the source file to observe.
	Path string

	// Interval is the polling interval.
	Interval time.Duration

	// Sync runs one pass. Errors are logged and absorbed; the loop
	// continues polling.
	Sync SyncFunc

	Logger *zap.Logger

	// Stat and Sleep are injectable for tests; they default to os.Stat
	// and a context-aware timer wait.
	Stat  func(name string) (os.FileInfo, error)
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run polls until the context is cancelled. The very first observation of
// the file always triggers a pass, as does a reappearance after the file
// was missing. After a pass finishes, the observed timestamp becomes the
// new baseline regardless of the pass outcome, so a persistently failing
// file is only retried when its timestamp moves again. A missing file is
// reported and polling continues.
//
// Cancellation is honored between passes, never mid-row. Run returns the
// context's error once stopped.
func (w *Watcher) Run(ctx context.Context) error {
	stat := w.Stat
	if stat == nil {
		stat = os.Stat
	}
	sleep := w.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	w.Logger.Info("Watching source file",
		zap.String("path", w.Path),
		zap.Duration("interval", w.Interval))

	var (
		baseline     time.Time
		haveBaseline bool
		wasMissing   bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := stat(w.Path)
		if err != nil {
			if os.IsNotExist(err) {
				w.Logger.Warn("Source file missing, waiting", zap.String("path", w.Path))
			} else {
				w.Logger.Error("Failed to stat source file", zap.String("path", w.Path), zap.Error(err))
			}
			wasMissing = true
			if err := sleep(ctx, w.Interval); err != nil {
				return err
			}
			continue
		}

		observed := info.ModTime()
		if !haveBaseline || wasMissing || !observed.Equal(baseline) {
			w.Logger.Info("Change detected, syncing", zap.Time("modified", observed))
			if err := w.Sync(ctx); err != nil {
				w.Logger.Error("Sync pass failed", zap.Error(err))
			} else {
				w.Logger.Info("Sync complete")
			}
			// Advance the baseline even on failure; only a further file
			// change retriggers a pass.
			baseline = observed
			haveBaseline = true
			wasMissing = false
		}

		if err := sleep(ctx, w.Interval); err != nil {
			return err
		}
	}
}

// sleepContext waits for the duration or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
