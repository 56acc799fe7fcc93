// Package loop
// Author: momentics <momentics@gmail.com>
//
// The event loop owns a reactor backend, the back-reference table shared by
// every resource created on it, a deferred-callback queue drained once per
// iteration, and the read allocator.
//
// A Loop is strictly single-threaded: Run, Step, Stop and every resource
// operation must happen on the same goroutine. Listeners run synchronously
// inside Step, on that same goroutine. The loop must outlive every resource
// created from it.
package loop
