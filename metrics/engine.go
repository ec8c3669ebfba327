// Package metrics turns a snapshot of the bills sheet into the numbers the
// dashboard shows. Every function reads a Frame and returns a fresh result;
// nothing is cached and nothing is written back.
package metrics

import (
	"time"

	"go.uber.org/zap"
)

// Engine computes metrics relative to the wall clock at call time.
type Engine struct {
	now    func() time.Time
	loc    *time.Location
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now. Tests pin "today" with it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the zone sheet timestamps are written in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithLogger sets where unparsable rows are reported.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine defaults to time.Now, time.Local and a no-op logger.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		loc:    time.Local,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now is the engine's current instant in its location.
func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// Location is the zone timestamps are parsed and compared in.
func (e *Engine) Location() *time.Location { return e.loc }
