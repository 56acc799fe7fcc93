// File: fake/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import "github.com/momentics/streamio/api"

// Allocator is a counting api.Allocator for ownership accounting in tests:
// every buffer it hands out increments Alloced, every release increments
// Released, and a double release increments DoubleReleased instead.
type Allocator struct {
	Alloced        int
	Released       int
	DoubleReleased int
}

// Alloc implements api.Allocator.
func (a *Allocator) Alloc(suggested int) api.Buffer {
	if suggested <= 0 {
		suggested = readSuggest
	}
	a.Alloced++
	return &Buffer{data: make([]byte, suggested), owner: a}
}

// Balanced reports whether every allocated buffer has been released exactly
// once.
func (a *Allocator) Balanced() bool {
	return a.Alloced == a.Released && a.DoubleReleased == 0
}

// Buffer is the counting buffer handed out by Allocator.
type Buffer struct {
	data     []byte
	owner    *Allocator
	released bool
}

// Bytes returns the buffer's backing storage, nil after release.
func (b *Buffer) Bytes() []byte {
	if b.released {
		return nil
	}
	return b.data
}

// Len returns the capacity of the backing storage.
func (b *Buffer) Len() int { return len(b.data) }

// Copy returns a standalone copy of the contents, nil after release.
func (b *Buffer) Copy() []byte {
	if b.released {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Release marks the buffer released and updates the owner's counters.
func (b *Buffer) Release() {
	if b.released {
		if b.owner != nil {
			b.owner.DoubleReleased++
		}
		return
	}
	b.released = true
	b.data = nil
	if b.owner != nil {
		b.owner.Released++
	}
}
