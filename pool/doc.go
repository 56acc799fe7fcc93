// Package pool
// Author: momentics <momentics@gmail.com>
//
// Free-list buffer pool backing the read path. Buffers returned by Get are
// reference-tracked: Release returns the storage to the pool and is
// idempotent, so a buffer handed off inside a DataEvent cannot be
// double-freed by a confused consumer.
package pool
