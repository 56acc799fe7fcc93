// Package resource
// Author: momentics <momentics@gmail.com>
//
// Lifecycle layer for reactor-backed wrappers. A Resource owns exactly one
// native backend record and a typed event emitter. The package provides the
// two lifecycle shapes the rest of streamio builds on:
//
//   - Handle: long-lived resources (sockets, pipes, timers) that stay alive
//     until explicitly closed.
//   - Request: one-shot resources representing a single asynchronous
//     operation, retired automatically after their completion event.
//
// Back-references from native records to wrappers go through a slot Table
// indexed by stable integer tokens rather than raw pointers. A completion
// trampoline resolves its token through the table; stale tokens (the wrapper
// was closed or retired in the meantime) simply fail to resolve, so a late
// callback is dropped instead of faulting.
//
// The whole package is single-threaded by contract: every call happens on
// the thread driving the owning loop.
package resource
