// File: resource/table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot table mapping stable integer tokens to wrapper instances. The token
// is what native records carry in their user-data slot; a generation counter
// per slot guards lookups against tokens that outlived their entry.

package resource

// Token is a stable reference to a table slot. The zero Token never
// resolves.
type Token uint64

type entry struct {
	wrapper any
	gen     uint32
	pins    int32
	valid   bool
}

// Table maps tokens to live wrapper instances. Entries also carry a pin
// count: a pinned entry keeps its slot (and therefore its wrapper) reserved
// until the pin is released, even after the entry is dropped.
//
// Not safe for concurrent use.
type Table struct {
	entries []entry
	free    []uint32
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		entries: make([]entry, 0, 16),
		free:    make([]uint32, 0, 8),
	}
}

func mkToken(idx, gen uint32) Token {
	return Token(uint64(gen)<<32 | uint64(idx)+1)
}

// lookup resolves a token to its slot, rejecting out-of-range indices and
// generation mismatches from recycled slots.
func (t *Table) lookup(tok Token) *entry {
	if tok == 0 {
		return nil
	}
	idx := uint32(tok&0xffffffff) - 1
	if int(idx) >= len(t.entries) {
		return nil
	}
	e := &t.entries[idx]
	if e.gen != uint32(tok>>32) {
		return nil
	}
	return e
}

// Put stores a wrapper and returns its token. The table holds a strong
// reference to the wrapper until the entry is dropped and unpinned.
func (t *Table) Put(wrapper any) Token {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.entries = append(t.entries, entry{})
		idx = uint32(len(t.entries) - 1)
	}
	e := &t.entries[idx]
	e.wrapper = wrapper
	e.pins = 0
	e.valid = true
	return mkToken(idx, e.gen)
}

// Get resolves a token to its wrapper. Dropped or stale tokens return
// (nil, false).
func (t *Table) Get(tok Token) (any, bool) {
	e := t.lookup(tok)
	if e == nil || !e.valid {
		return nil, false
	}
	return e.wrapper, true
}

// Pin reserves the entry across an asynchronous boundary. Pinning a stale
// token is a no-op.
func (t *Table) Pin(tok Token) {
	if e := t.lookup(tok); e != nil && e.valid {
		e.pins++
	}
}

// Unpin releases one pin. The slot is recycled once the entry is dropped
// and the last pin is gone.
func (t *Table) Unpin(tok Token) {
	e := t.lookup(tok)
	if e == nil {
		return
	}
	if e.pins > 0 {
		e.pins--
	}
	t.recycle(tok, e)
}

// Drop invalidates the entry: subsequent Get calls fail. The slot itself is
// recycled when no pins remain.
func (t *Table) Drop(tok Token) {
	e := t.lookup(tok)
	if e == nil {
		return
	}
	e.valid = false
	t.recycle(tok, e)
}

func (t *Table) recycle(tok Token, e *entry) {
	if e.valid || e.pins > 0 {
		return
	}
	e.wrapper = nil
	e.gen++
	t.free = append(t.free, uint32(tok&0xffffffff)-1)
}

// Live returns the number of valid entries.
func (t *Table) Live() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].valid {
			n++
		}
	}
	return n
}
