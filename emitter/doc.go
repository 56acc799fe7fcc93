// Package emitter
// Author: momentics <momentics@gmail.com>
//
// Type-indexed publish/subscribe hub. Listener lists are swapped
// copy-on-write so a publish in flight always iterates the snapshot taken
// when it started; registrations and removals during a publish take effect
// for the next one.
//
// An Emitter is single-threaded by contract: all registration and
// publication happens on the loop thread that owns the resource.
package emitter
