// File: facade/facade.go
// Unified facade layer for the streamio library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// StreamIO aggregates the core components behind a single entry point: it
// wires a reactor backend, the event loop, the read-buffer pool and the
// logger from an immutable configuration, and hands out streams bound to
// that loop.

package facade

import (
	"github.com/brickingsoft/errors"
	"go.uber.org/zap"

	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/loop"
	"github.com/momentics/streamio/pool"
	"github.com/momentics/streamio/stream"
)

var ErrNilBackend = errors.Define("streamio: facade requires a backend")

// StreamIO is the main facade type.
type StreamIO struct {
	cfg  *Config
	lp   *loop.Loop
	pool *pool.Pool
	log  *zap.Logger
}

// New constructs a StreamIO over the given reactor backend. A nil cfg
// selects DefaultConfig.
func New(cfg *Config, backend api.Backend) (*StreamIO, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, errors.New("logger init failed", errors.WithWrap(err))
	}

	p := pool.New(cfg.ReadBufferSize)
	lp, err := loop.New(backend, loop.WithAllocator(p), loop.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &StreamIO{cfg: cfg, lp: lp, pool: p, log: log}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	switch level {
	case "debug":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewNop(), nil
	}
}

// Loop returns the wired event loop.
func (s *StreamIO) Loop() *loop.Loop { return s.lp }

// Pool returns the wired read-buffer pool.
func (s *StreamIO) Pool() *pool.Pool { return s.pool }

// Logger returns the facade logger.
func (s *StreamIO) Logger() *zap.Logger { return s.log }

// Config returns the active configuration.
func (s *StreamIO) Config() *Config { return s.cfg }

// NewStream creates a stream bound to the facade's loop.
func (s *StreamIO) NewStream() *stream.Stream {
	return stream.New(s.lp)
}

// ListenStream creates a stream and arms it with the configured backlog.
func (s *StreamIO) ListenStream() *stream.Stream {
	st := stream.New(s.lp)
	st.Listen(s.cfg.Backlog)
	return st
}

// Run drives the loop until Stop or until no live resources remain.
func (s *StreamIO) Run() error {
	s.log.Debug("streamio starting", zap.Int("backlog", s.cfg.Backlog))
	return s.lp.Run()
}

// Stop makes Run return after the current iteration.
func (s *StreamIO) Stop() {
	s.lp.Stop()
}
