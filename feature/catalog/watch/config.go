package watch

import "time"

// Config holds configuration for the watch loop.
type Config struct {
	// IntervalSeconds is the polling interval for source file changes.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"2"`
}

// Interval returns the polling interval as a duration, with a sane floor.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}
