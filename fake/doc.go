// Package fake
// Author: momentics <momentics@gmail.com>
//
// Deterministic in-memory reactor backend and counting allocator for tests.
// The backend records armed reads and listens, captures write payloads, and
// queues one-shot completions in FIFO order; tests fire completions and
// read results explicitly to drive the resource layer without any OS I/O.
package fake
