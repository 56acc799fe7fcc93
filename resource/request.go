// File: resource/request.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resource

import (
	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/emitter"
)

// Request is a one-shot resource backing a single asynchronous operation.
// It is kept alive by the Exec pin between issue and completion and retires
// itself once its single completion event has been published.
type Request struct {
	Base
	settled bool
}

// Requester is implemented by every concrete request type through
// embedding; completion trampolines use it to recover the Request core
// from a table wrapper.
type Requester interface {
	RequestCore() *Request
}

// RequestCore returns the embedded request.
func (r *Request) RequestCore() *Request { return r }

// Settled reports whether the completion event has already been published.
func (r *Request) Settled() bool { return r.settled }

// Exec issues the request's single asynchronous operation. The request is
// pinned until its completion trampoline settles it; a synchronous failure
// settles it immediately with an ErrorEvent, so the request never outlives
// a failed issue. Shadows the generic Base.Exec with one-shot semantics.
func (r *Request) Exec(op func() api.Status) {
	r.lp.Table().Pin(r.tok)
	if st := op(); st != api.StatusOK {
		if !r.settled {
			r.settled = true
			emitter.Publish(r.em, api.ErrorEvent{Status: st})
		}
		r.retire()
	}
}

// Settle publishes the request's single outcome and retires it. A non-zero
// status publishes ErrorEvent, otherwise evt. Exactly one event is ever
// published per request; later calls are no-ops.
func Settle[E any](r *Request, status api.Status, evt E) {
	if r.settled {
		return
	}
	r.settled = true
	if status != api.StatusOK {
		emitter.Publish(r.em, api.ErrorEvent{Status: status})
	} else {
		emitter.Publish(r.em, evt)
	}
	r.retire()
}

// retire drops the table entry, releases the Exec pin and frees the native
// record. After this the request is unreachable from the reactor.
func (r *Request) retire() {
	t := r.lp.Table()
	t.Drop(r.tok)
	t.Unpin(r.tok)
	r.lp.Backend().Free(r.obj)
}
