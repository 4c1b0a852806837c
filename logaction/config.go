package logaction

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Config selects which messages a pipeline lets through.
type Config struct {
	Level       Severity // default: Info
	SampleEvery uint64   // default: 1, keep everything
	// Window restricts messages to a time span when set.
	Window *timespan.TimeSpan
	// SyncEach flushes the logger after every message.
	SyncEach bool
}

// NewConfig normalizes its arguments: an out-of-range level becomes Info
// and a zero sample rate becomes 1.
func NewConfig(level Severity, sampleEvery uint64) Config {
	if level < Debug || level > Error {
		level = Info
	}
	if sampleEvery == 0 {
		sampleEvery = 1
	}
	return Config{
		Level:       level,
		SampleEvery: sampleEvery,
	}
}

// WithWindow returns a copy of c restricted to messages stamped between from
// (inclusive) and to (exclusive).
func (c Config) WithWindow(from, to time.Time) Config {
	span := timespan.BetweenTimes(from, to)
	c.Window = &span
	return c
}

// WithSyncEach returns a copy of c that flushes after every message.
func (c Config) WithSyncEach() Config {
	c.SyncEach = true
	return c
}
