// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/momentics/streamio/api"
)

// DefaultBufferSize is the capacity handed out when a caller does not
// suggest one.
const DefaultBufferSize = 64 * 1024

// Pool is a free-list allocator of fixed-capacity read buffers. It
// implements api.Allocator.
//
// Not safe for concurrent use across loops; one pool serves one loop
// thread.
type Pool struct {
	size int
	free chan *buffer
}

// New creates a pool handing out buffers of the given capacity. size <= 0
// selects DefaultBufferSize.
func New(size int) *Pool {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Pool{
		size: size,
		free: make(chan *buffer, 256),
	}
}

// Get returns a buffer with capacity at least n. Requests larger than the
// pool's buffer size are satisfied with a one-off allocation that is not
// recycled.
func (p *Pool) Get(n int) api.Buffer {
	if n <= 0 {
		n = p.size
	}
	if n > p.size {
		return &buffer{data: make([]byte, n)}
	}
	select {
	case b := <-p.free:
		b.released = false
		return b
	default:
		return &buffer{data: make([]byte, p.size), pool: p}
	}
}

// Alloc implements api.Allocator.
func (p *Pool) Alloc(suggested int) api.Buffer {
	return p.Get(suggested)
}

func (p *Pool) put(b *buffer) {
	select {
	case p.free <- b:
	default:
		// pool full, let the GC have it
	}
}

type buffer struct {
	data     []byte
	pool     *Pool
	released bool
}

func (b *buffer) Bytes() []byte { return b.data }

func (b *buffer) Len() int { return len(b.data) }

func (b *buffer) Copy() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	if b.pool != nil {
		b.pool.put(b)
	}
}
