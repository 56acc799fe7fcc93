// File: resource/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resource

import (
	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/emitter"
)

// Handle is a long-lived resource. It stays resolvable (and therefore
// alive) from Init until Close, regardless of whether the application keeps
// its own reference: the loop's table holds the wrapper for the handle's
// whole open lifetime.
//
// Lifecycle: open -> active -> closing -> closed. Close is asynchronous;
// CloseEvent on the next loop turn is the terminal signal, after which no
// further events are delivered.
type Handle struct {
	Base
	closing bool
	closed  bool
}

// Closing reports whether Close has been requested.
func (h *Handle) Closing() bool { return h.closing }

// Closed reports whether the close has completed.
func (h *Handle) Closed() bool { return h.closed }

// Close starts tearing the handle down. The table entry is dropped
// immediately, so callbacks arriving after Close fail to resolve and are
// discarded; the native record is freed and CloseEvent published on the
// next loop turn. Calling Close again is a no-op.
func (h *Handle) Close() {
	if h.closing {
		return
	}
	h.closing = true
	h.lp.Table().Drop(h.tok)
	h.lp.Defer(func() {
		h.closed = true
		h.lp.Backend().Free(h.obj)
		emitter.Publish(h.em, api.CloseEvent{})
	})
}
