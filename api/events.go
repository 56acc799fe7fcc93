// File: api/events.go
// Package api defines the event payloads published by streamio resources.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// DataEvent is published for every inbound chunk delivered by the read path.
// Ownership of Buf transfers to the event: the consumer is responsible for
// calling Buf.Release() once it is done with the data. N is the number of
// valid bytes at the front of the buffer.
type DataEvent struct {
	Buf Buffer
	N   int
}

// Bytes returns the valid portion of the buffer.
func (e DataEvent) Bytes() []byte {
	return e.Buf.Bytes()[:e.N]
}

// EndEvent is published when the peer closes its side of the stream cleanly.
// It is not an error.
type EndEvent struct{}

// ErrorEvent carries a negative reactor status code. It is published on every
// failure path, synchronous or asynchronous.
type ErrorEvent struct {
	Status Status
}

func (e ErrorEvent) Error() string {
	return e.Status.Str()
}

// ShutdownEvent signals completion of an asynchronous half-close.
type ShutdownEvent struct{}

// WriteEvent signals completion of an asynchronous write.
type WriteEvent struct{}

// ListenEvent is published once per incoming connection attempt on a
// listening stream. Acceptance is a separate operation on the concrete
// handle type.
type ListenEvent struct{}

// CloseEvent is the terminal signal of a handle's lifecycle. After it is
// published no further events are delivered for the handle.
type CloseEvent struct{}
