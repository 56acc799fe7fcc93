// Package api
// Author: momentics <momentics@gmail.com>
//
// Core contracts for streamio: event payloads, reactor status codes, the
// Backend interface implemented by reactor drivers, and the buffer/allocator
// contracts shared between the read path and buffer pools.
//
// Everything in this package is a plain value type or a small interface so
// reactor drivers and resource wrappers can be developed independently.
package api
