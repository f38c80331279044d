// Package watch provides the polling loop that re-syncs the store when the
// source file changes.
//
// The watcher is deliberately a single cooperative loop rather than an
// inotify-style subscription: the debounce contract is defined in terms of
// observed modification timestamps, and the stat and sleep functions are
// injectable so tests can drive the loop with a fake clock instead of
// wall-time sleeps.
//
// # Debounce
//
// Two consecutive polls observing the same timestamp trigger at most one
// pass. The baseline timestamp is recorded after each pass whether it
// succeeded or failed, so an unchanged but broken source file is not
// retried every tick.
package watch
