// File: resource/resource.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Base resource: one native backend record, one emitter, one table token.
// Handle and Request build their lifecycles on top of the pin and publish
// primitives defined here.

package resource

import (
	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/emitter"
)

// Loop is the slice of the owning event loop a resource needs: native
// record allocation through the backend, the shared back-reference table,
// next-turn scheduling and the read allocator. *loop.Loop implements it.
type Loop interface {
	Backend() api.Backend
	Table() *Table
	Defer(fn func())
	Allocator() api.Allocator
}

// Base wires a wrapper instance to its loop. It must be initialized with
// Init before use; concrete wrapper types embed Base (via Handle or
// Request) and pass themselves as self so trampolines resolve the
// most-derived instance.
type Base struct {
	lp  Loop
	em  *emitter.Emitter
	obj *api.NativeObject
	tok Token
}

// Init allocates the native record, registers self in the loop's table and
// stores the resulting token in the record's user-data slot.
func (b *Base) Init(lp Loop, kind api.NativeKind, self any) {
	b.lp = lp
	b.em = emitter.New()
	b.obj = lp.Backend().Alloc(kind)
	b.tok = lp.Table().Put(self)
	b.obj.UserData = uint64(b.tok)
}

// Loop returns the owning loop.
func (b *Base) Loop() Loop { return b.lp }

// Backend returns the owning loop's reactor backend.
func (b *Base) Backend() api.Backend { return b.lp.Backend() }

// Events returns the resource's emitter for listener registration.
func (b *Base) Events() *emitter.Emitter { return b.em }

// Native returns the resource's native record. The pointer stays valid for
// the resource's open lifetime.
func (b *Base) Native() *api.NativeObject { return b.obj }

// Token returns the resource's table token. Holding a token never extends
// the resource's lifetime; it is the weak relation used by repost
// listeners.
func (b *Base) Token() Token { return b.tok }

// Exec issues an asynchronous reactor operation. The resource is pinned
// before op runs so it survives until the completion trampoline fires even
// if every external reference is dropped. If op fails synchronously the
// failure is published as an ErrorEvent and the pin released immediately;
// otherwise releasing the pin is the trampoline's responsibility.
func (b *Base) Exec(op func() api.Status) {
	b.lp.Table().Pin(b.tok)
	if st := op(); st != api.StatusOK {
		emitter.Publish(b.em, api.ErrorEvent{Status: st})
		b.lp.Table().Unpin(b.tok)
	}
}

// Invoke runs a synchronous reactor call. Negative results are published as
// an ErrorEvent; the status is also returned so callers can branch without
// registering a listener.
func (b *Base) Invoke(op func() api.Status) api.Status {
	st := op()
	if st < api.StatusOK {
		emitter.Publish(b.em, api.ErrorEvent{Status: st})
	}
	return st
}

// Unpin releases one pin taken by Exec. Called from completion trampolines
// after the completion event has been published.
func (b *Base) Unpin() {
	b.lp.Table().Unpin(b.tok)
}
