// File: api/backend.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral reactor backend interface. Concrete drivers (epoll, IOCP,
// io_uring, in-memory test doubles) implement Backend; the resource layer is
// written entirely against it.

package api

// AllocCallback is invoked by the backend immediately before delivering a
// read result, to obtain the buffer the result is written into.
type AllocCallback func(suggested int) Buffer

// ReadCallback delivers one inbound chunk, EOF marker or error for an armed
// read. nread follows the signed convention: StatusEOF for clean peer close,
// positive byte count for data, any other non-positive value is a failure
// status. buf may be nil when no buffer was filled.
type ReadCallback func(obj *NativeObject, nread int, buf Buffer)

// ListenCallback is invoked once per incoming connection attempt on a
// listening handle.
type ListenCallback func(obj *NativeObject, status Status)

// CompletionCallback delivers the single completion of a one-shot operation
// record. It is invoked exactly once per issued operation.
type CompletionCallback func(req *NativeObject, status Status)

// Backend is the raw reactor surface the resource layer drives. All calls
// happen on the loop thread; implementations need no internal locking.
//
// Callback delivery contract: callbacks registered through StartListen,
// StartRead, Write and Shutdown fire from within Poll, on the same thread,
// in the order the backend completed the underlying operations. Completions
// for operations issued against a single native object preserve issue order.
type Backend interface {
	// Alloc creates the native record for a resource of the given kind.
	Alloc(kind NativeKind) *NativeObject

	// Free releases a native record and disarms any callbacks still
	// registered on it. Pending one-shot operations issued with their own
	// request records are not affected.
	Free(obj *NativeObject)

	// StartListen arms connection-attempt delivery on obj.
	StartListen(obj *NativeObject, backlog int, cb ListenCallback) Status

	// StartRead arms read delivery on obj. alloc is consulted for a buffer
	// before each delivery.
	StartRead(obj *NativeObject, alloc AllocCallback, cb ReadCallback) Status

	// StopRead disarms read delivery on obj.
	StopRead(obj *NativeObject) Status

	// Write issues an asynchronous vectored write against obj, tracked by
	// the dedicated request record req.
	Write(req, obj *NativeObject, bufs [][]byte, cb CompletionCallback) Status

	// Shutdown issues an asynchronous half-close against obj, tracked by req.
	Shutdown(req, obj *NativeObject, cb CompletionCallback) Status

	// TryWrite attempts a non-queuing synchronous write. Returns bytes
	// written, or a negative Status value on failure. Never blocks.
	TryWrite(obj *NativeObject, bufs [][]byte) int

	// Readable reports whether obj is currently readable.
	Readable(obj *NativeObject) bool

	// Writable reports whether obj is currently writable.
	Writable(obj *NativeObject) bool

	// SockName fills sa with the local address of obj.
	SockName(obj *NativeObject, sa *SockAddr) Status

	// PeerName fills sa with the remote address of obj.
	PeerName(obj *NativeObject, sa *SockAddr) Status

	// Poll advances the backend one iteration, delivering every completion
	// that is ready. Returns the number of callbacks invoked.
	Poll() int
}
