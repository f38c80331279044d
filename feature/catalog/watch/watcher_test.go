package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeInfo is a minimal os.FileInfo carrying only a modification time.
type fakeInfo struct {
	mod time.Time
}

func (f fakeInfo) Name() string       { return "products.xlsx" }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() any           { return nil }

// observation scripts one poll tick: either a modification time or an error.
type observation struct {
	mod time.Time
	err error
}

// runScript drives the watcher through the given observations with a fake
// clock, then cancels. Returns the number of sync invocations.
func runScript(t *testing.T, script []observation, syncErr error) int {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tick := 0
	syncs := 0

	w := &Watcher{
		Path:     "products.xlsx",
		Interval: time.Second,
		Logger:   zap.NewNop(),
		Sync: func(context.Context) error {
			syncs++
			return syncErr
		},
		Stat: func(string) (os.FileInfo, error) {
			obs := script[tick]
			if obs.err != nil {
				return nil, obs.err
			}
			return fakeInfo{mod: obs.mod}, nil
		},
		Sleep: func(ctx context.Context, d time.Duration) error {
			tick++
			if tick >= len(script) {
				cancel()
				return ctx.Err()
			}
			return nil
		},
	}

	err := w.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	return syncs
}

func TestWatcher_FirstObservationTriggers(t *testing.T) {
	t0 := time.Unix(1000, 0)
	syncs := runScript(t, []observation{{mod: t0}}, nil)
	assert.Equal(t, 1, syncs)
}

func TestWatcher_DebounceUnchangedTimestamp(t *testing.T) {
	t0 := time.Unix(1000, 0)
	t1 := time.Unix(2000, 0)

	// Two ticks with the same timestamp trigger one sync; a third tick
	// with a changed timestamp triggers exactly one more.
	syncs := runScript(t, []observation{{mod: t0}, {mod: t0}, {mod: t1}}, nil)
	assert.Equal(t, 2, syncs)
}

func TestWatcher_MissingFileKeepsPolling(t *testing.T) {
	t0 := time.Unix(1000, 0)
	notExist := &fs.PathError{Op: "stat", Path: "products.xlsx", Err: fs.ErrNotExist}

	syncs := runScript(t, []observation{{err: notExist}, {err: notExist}, {mod: t0}}, nil)
	assert.Equal(t, 1, syncs)
}

func TestWatcher_ReappearanceTriggersEvenWithOldTimestamp(t *testing.T) {
	t0 := time.Unix(1000, 0)
	notExist := &fs.PathError{Op: "stat", Path: "products.xlsx", Err: fs.ErrNotExist}

	// Synced at t0, file vanishes, then reappears with the same mtime:
	// the reappearance still triggers a pass.
	syncs := runScript(t, []observation{{mod: t0}, {err: notExist}, {mod: t0}}, nil)
	assert.Equal(t, 2, syncs)
}

func TestWatcher_FailedPassNotRetriedOnSameTimestamp(t *testing.T) {
	t0 := time.Unix(1000, 0)
	t1 := time.Unix(2000, 0)

	// The baseline advances even when the pass fails, so the broken file
	// is only retried once its timestamp moves.
	syncs := runScript(t, []observation{{mod: t0}, {mod: t0}, {mod: t1}}, errors.New("pass failed"))
	assert.Equal(t, 2, syncs)
}

func TestWatcher_StopsOnlyOnCancel(t *testing.T) {
	t0 := time.Unix(1000, 0)

	// Many unchanged ticks: loop keeps polling, never terminates on its own.
	script := make([]observation, 10)
	for i := range script {
		script[i] = observation{mod: t0}
	}
	syncs := runScript(t, script, nil)
	assert.Equal(t, 1, syncs)
}

func TestConfig_Interval(t *testing.T) {
	assert.Equal(t, 2*time.Second, Config{}.Interval())
	assert.Equal(t, 2*time.Second, Config{IntervalSeconds: -1}.Interval())
	assert.Equal(t, 5*time.Second, Config{IntervalSeconds: 5}.Interval())
}
