// File: loop/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package loop

import (
	"github.com/brickingsoft/errors"
	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/pool"
	"github.com/momentics/streamio/resource"
)

var (
	ErrNilBackend     = errors.Define("streamio: nil backend")
	ErrAlreadyRunning = errors.Define("streamio: loop already running")
)

// Loop drives one reactor backend and owns the state shared by all
// resources created on it.
type Loop struct {
	backend  api.Backend
	table    *resource.Table
	deferred *queue.Queue
	alloc    api.Allocator
	log      *zap.Logger
	running  bool
	stopping bool
}

// Option configures a Loop at construction time.
type Option func(*Loop)

// WithLogger replaces the default nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.log = l
		}
	}
}

// WithAllocator replaces the default read-buffer pool.
func WithAllocator(a api.Allocator) Option {
	return func(lp *Loop) {
		if a != nil {
			lp.alloc = a
		}
	}
}

// New creates a loop over the given backend.
func New(backend api.Backend, opts ...Option) (*Loop, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	lp := &Loop{
		backend:  backend,
		table:    resource.NewTable(),
		deferred: queue.New(),
		alloc:    pool.New(0),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(lp)
	}
	return lp, nil
}

// Backend returns the reactor backend the loop drives.
func (lp *Loop) Backend() api.Backend { return lp.backend }

// Table returns the back-reference table shared by the loop's resources.
func (lp *Loop) Table() *resource.Table { return lp.table }

// Allocator returns the read-buffer allocator.
func (lp *Loop) Allocator() api.Allocator { return lp.alloc }

// Logger returns the loop's logger.
func (lp *Loop) Logger() *zap.Logger { return lp.log }

// Defer schedules fn to run on the next loop iteration, after the backend
// poll. Callbacks queued while draining run one iteration later.
func (lp *Loop) Defer(fn func()) {
	lp.deferred.Add(fn)
}

// Alive returns the number of live resources bound to the loop.
func (lp *Loop) Alive() int { return lp.table.Live() }

// Step advances the loop one iteration: polls the backend, then drains the
// deferred callbacks queued before the iteration started. Returns the
// number of callbacks run.
func (lp *Loop) Step() int {
	n := lp.backend.Poll()
	k := lp.deferred.Length()
	for i := 0; i < k; i++ {
		fn := lp.deferred.Remove().(func())
		fn()
	}
	return n + k
}

// Run iterates until Stop is called or no live resources and no deferred
// work remain.
func (lp *Loop) Run() error {
	if lp.running {
		return ErrAlreadyRunning
	}
	lp.running = true
	lp.stopping = false
	defer func() { lp.running = false }()

	for !lp.stopping {
		lp.Step()
		if lp.table.Live() == 0 && lp.deferred.Length() == 0 {
			break
		}
	}
	lp.log.Debug("loop finished", zap.Int("alive", lp.table.Live()))
	return nil
}

// Stop makes Run return after the current iteration. Safe to call from a
// listener.
func (lp *Loop) Stop() {
	lp.stopping = true
}
