// File: api/buffer.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer and allocator contracts for the read path. The reactor asks the
// allocator for a buffer immediately before issuing a read; the resource
// layer guarantees the buffer is released or handed off exactly once per
// read callback invocation.

package api

// Buffer describes a releasable memory region handed between the allocator,
// the reactor and event consumers.
type Buffer interface {
	// Bytes returns the buffer's backing storage.
	Bytes() []byte

	// Len returns the capacity of the backing storage.
	Len() int

	// Copy returns a standalone copy of the buffer contents.
	Copy() []byte

	// Release returns the buffer to its pool. The buffer must not be used
	// afterwards. Release is idempotent.
	Release()
}

// Allocator supplies buffers for read operations.
type Allocator interface {
	// Alloc returns a buffer with at least the suggested capacity.
	Alloc(suggested int) Buffer
}
