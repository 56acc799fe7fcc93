// Package stream
// Author: momentics <momentics@gmail.com>
//
// Generic duplex byte-stream protocol over a resource handle: listen, read,
// write, try-write, shutdown and readability queries, uniform across stream
// kinds (TCP, pipe, TTY, tunnel). Concrete kinds embed Stream and register
// themselves as the back-reference target so events are published from the
// most-derived wrapper.
//
// Asynchronous write and shutdown are delegated to private one-shot request
// resources; their completions are reposted onto the owning stream through
// a weak token relation, so a stream closed while an operation is in flight
// silently drops the completion instead of faulting.
package stream
