// File: fake/backend.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"github.com/eapache/queue"

	"github.com/momentics/streamio/api"
)

// suggested read size handed to allocators when a firing helper has no
// payload to size from.
const readSuggest = 64 * 1024

type readArm struct {
	alloc api.AllocCallback
	cb    api.ReadCallback
}

type listenArm struct {
	backlog int
	cb      api.ListenCallback
}

type pendingOp struct {
	req *api.NativeObject
	cb  api.CompletionCallback
}

// Backend is an in-memory api.Backend. The zero value is not ready; use
// New.
//
// Failure injection: setting one of the Fail* fields to a non-zero status
// makes the matching primitive fail synchronously with that status.
type Backend struct {
	FailListen   api.Status
	FailRead     api.Status
	FailStop     api.Status
	FailWrite    api.Status
	FailShutdown api.Status

	// TryWriteResult is returned verbatim by TryWrite when TryWriteSet is
	// true; otherwise TryWrite reports the full payload length as written.
	TryWriteResult int
	TryWriteSet    bool

	// NotReadable / NotWritable flip the readiness queries, which default
	// to true.
	NotReadable bool
	NotWritable bool

	// Local and Peer back the name queries. NameStatus (when non-zero) makes
	// both queries fail.
	Local      api.SockAddr
	Peer       api.SockAddr
	NameStatus api.Status

	pending   *queue.Queue
	reads     map[*api.NativeObject]readArm
	listens   map[*api.NativeObject]listenArm
	writes    [][]byte
	shutdowns int
	allocs    int
	frees     int
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{
		pending: queue.New(),
		reads:   make(map[*api.NativeObject]readArm),
		listens: make(map[*api.NativeObject]listenArm),
	}
}

// Alloc implements api.Backend.
func (b *Backend) Alloc(kind api.NativeKind) *api.NativeObject {
	b.allocs++
	return &api.NativeObject{Kind: kind}
}

// Free implements api.Backend. Any arms registered on obj are dropped.
func (b *Backend) Free(obj *api.NativeObject) {
	delete(b.reads, obj)
	delete(b.listens, obj)
	b.frees++
}

// StartListen implements api.Backend.
func (b *Backend) StartListen(obj *api.NativeObject, backlog int, cb api.ListenCallback) api.Status {
	if b.FailListen != api.StatusOK {
		return b.FailListen
	}
	b.listens[obj] = listenArm{backlog: backlog, cb: cb}
	return api.StatusOK
}

// StartRead implements api.Backend.
func (b *Backend) StartRead(obj *api.NativeObject, alloc api.AllocCallback, cb api.ReadCallback) api.Status {
	if b.FailRead != api.StatusOK {
		return b.FailRead
	}
	b.reads[obj] = readArm{alloc: alloc, cb: cb}
	return api.StatusOK
}

// StopRead implements api.Backend.
func (b *Backend) StopRead(obj *api.NativeObject) api.Status {
	if b.FailStop != api.StatusOK {
		return b.FailStop
	}
	delete(b.reads, obj)
	return api.StatusOK
}

// Write implements api.Backend. The payload is captured and the completion
// queued; fire it with CompleteNext or Poll.
func (b *Backend) Write(req, obj *api.NativeObject, bufs [][]byte, cb api.CompletionCallback) api.Status {
	if b.FailWrite != api.StatusOK {
		return b.FailWrite
	}
	var payload []byte
	for _, p := range bufs {
		payload = append(payload, p...)
	}
	b.writes = append(b.writes, payload)
	b.pending.Add(pendingOp{req: req, cb: cb})
	return api.StatusOK
}

// Shutdown implements api.Backend.
func (b *Backend) Shutdown(req, obj *api.NativeObject, cb api.CompletionCallback) api.Status {
	if b.FailShutdown != api.StatusOK {
		return b.FailShutdown
	}
	b.shutdowns++
	b.pending.Add(pendingOp{req: req, cb: cb})
	return api.StatusOK
}

// TryWrite implements api.Backend.
func (b *Backend) TryWrite(obj *api.NativeObject, bufs [][]byte) int {
	if b.TryWriteSet {
		return b.TryWriteResult
	}
	n := 0
	for _, p := range bufs {
		n += len(p)
	}
	return n
}

// Readable implements api.Backend.
func (b *Backend) Readable(obj *api.NativeObject) bool { return !b.NotReadable }

// Writable implements api.Backend.
func (b *Backend) Writable(obj *api.NativeObject) bool { return !b.NotWritable }

// SockName implements api.Backend.
func (b *Backend) SockName(obj *api.NativeObject, sa *api.SockAddr) api.Status {
	if b.NameStatus != api.StatusOK {
		return b.NameStatus
	}
	*sa = b.Local
	return api.StatusOK
}

// PeerName implements api.Backend.
func (b *Backend) PeerName(obj *api.NativeObject, sa *api.SockAddr) api.Status {
	if b.NameStatus != api.StatusOK {
		return b.NameStatus
	}
	*sa = b.Peer
	return api.StatusOK
}

// Poll implements api.Backend: it fires, in FIFO order, every completion
// queued before the call, each with StatusOK.
func (b *Backend) Poll() int {
	n := b.pending.Length()
	for i := 0; i < n; i++ {
		op := b.pending.Remove().(pendingOp)
		op.cb(op.req, api.StatusOK)
	}
	return n
}

// CompleteNext fires the oldest queued completion with the given status.
// Returns false if nothing is pending.
func (b *Backend) CompleteNext(status api.Status) bool {
	if b.pending.Length() == 0 {
		return false
	}
	op := b.pending.Remove().(pendingOp)
	op.cb(op.req, status)
	return true
}

// Pending returns the number of queued one-shot completions.
func (b *Backend) Pending() int { return b.pending.Length() }

// Writes returns the captured write payloads in issue order.
func (b *Backend) Writes() [][]byte { return b.writes }

// Shutdowns returns the number of shutdown operations issued.
func (b *Backend) Shutdowns() int { return b.shutdowns }

// Allocs returns the number of native records allocated.
func (b *Backend) Allocs() int { return b.allocs }

// Frees returns the number of native records freed.
func (b *Backend) Frees() int { return b.frees }

// Reading reports whether read delivery is armed on obj.
func (b *Backend) Reading(obj *api.NativeObject) bool {
	_, ok := b.reads[obj]
	return ok
}

// Listening reports whether listen delivery is armed on obj.
func (b *Backend) Listening(obj *api.NativeObject) bool {
	_, ok := b.listens[obj]
	return ok
}

// Backlog returns the backlog the listen on obj was armed with.
func (b *Backend) Backlog(obj *api.NativeObject) int {
	return b.listens[obj].backlog
}

// FireRead delivers one inbound chunk through the armed read callback. The
// buffer comes from the allocator the read was armed with, exactly like a
// real reactor. No-op if reading is not armed on obj.
func (b *Backend) FireRead(obj *api.NativeObject, data []byte) {
	arm, ok := b.reads[obj]
	if !ok {
		return
	}
	n := len(data)
	suggest := n
	if suggest <= 0 {
		suggest = readSuggest
	}
	buf := arm.alloc(suggest)
	copy(buf.Bytes(), data)
	arm.cb(obj, n, buf)
}

// FireEOF delivers a clean peer close. A buffer is still allocated first,
// mirroring reactors that request storage before learning the result.
func (b *Backend) FireEOF(obj *api.NativeObject) {
	arm, ok := b.reads[obj]
	if !ok {
		return
	}
	buf := arm.alloc(readSuggest)
	arm.cb(obj, int(api.StatusEOF), buf)
}

// FireReadError delivers a read failure with the given status. withBuf
// controls whether a buffer was allocated before the failure surfaced.
func (b *Backend) FireReadError(obj *api.NativeObject, status api.Status, withBuf bool) {
	arm, ok := b.reads[obj]
	if !ok {
		return
	}
	var buf api.Buffer
	if withBuf {
		buf = arm.alloc(readSuggest)
	}
	arm.cb(obj, int(status), buf)
}

// FireListen delivers one connection attempt result through the armed
// listen callback.
func (b *Backend) FireListen(obj *api.NativeObject, status api.Status) {
	arm, ok := b.listens[obj]
	if !ok {
		return
	}
	arm.cb(obj, status)
}
