// File: stream/stream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stream

import (
	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/emitter"
	"github.com/momentics/streamio/resource"
)

// DefaultBacklog is used when Listen is given a non-positive backlog.
const DefaultBacklog = 128

// Streamer is implemented by every stream kind through embedding. Read and
// listen trampolines use it to recover the Stream core from whatever
// wrapper the back-reference table resolves to.
type Streamer interface {
	StreamCore() *Stream
}

// Stream is the duplex protocol core. Use New for a plain stream or embed
// Stream in a concrete kind and initialize it with Bind.
type Stream struct {
	resource.Handle
	reading   bool
	listening bool
}

// New creates a stand-alone stream bound to lp.
func New(lp resource.Loop) *Stream {
	s := &Stream{}
	s.Bind(lp, s)
	return s
}

// Bind initializes the stream on lp. Concrete kinds pass themselves as self
// so trampolines and repost listeners resolve the most-derived wrapper.
func (s *Stream) Bind(lp resource.Loop, self any) {
	s.Init(lp, api.KindStream, self)
}

// StreamCore implements Streamer.
func (s *Stream) StreamCore() *Stream { return s }

// Reading reports whether read delivery is armed.
func (s *Stream) Reading() bool { return s.reading }

// Listening reports whether connection-attempt delivery is armed.
func (s *Stream) Listening() bool { return s.listening }

// Listen arms the backend to watch for incoming connection attempts. Each
// attempt publishes ListenEvent, or ErrorEvent with the failure status.
// Listen itself never accepts; acceptance belongs to the concrete kind.
// backlog <= 0 selects DefaultBacklog.
func (s *Stream) Listen(backlog int) {
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	lp := s.Loop()
	st := s.Invoke(func() api.Status {
		return s.Backend().StartListen(s.Native(), backlog, listenTrampoline(lp))
	})
	if st == api.StatusOK {
		s.listening = true
	}
}

// Read arms read delivery. Inbound chunks publish DataEvent, a clean peer
// close publishes EndEvent, failures publish ErrorEvent.
func (s *Stream) Read() {
	lp := s.Loop()
	alloc := lp.Allocator()
	st := s.Invoke(func() api.Status {
		return s.Backend().StartRead(s.Native(), alloc.Alloc, readTrampoline(lp))
	})
	if st == api.StatusOK {
		s.reading = true
	}
}

// Stop disarms read delivery. The stream stays open; Read may be called
// again later.
func (s *Stream) Stop() {
	st := s.Invoke(func() api.Status {
		return s.Backend().StopRead(s.Native())
	})
	if st == api.StatusOK {
		s.reading = false
	}
}

// Write issues an asynchronous write of p. Completion is reported on this
// stream as WriteEvent or ErrorEvent. The write is tracked by its own
// one-shot request, so the stream may be closed while it is in flight; the
// completion is then dropped.
func (s *Stream) Write(p []byte) {
	req := newWriteRequest(s.Loop())
	relay[api.ErrorEvent](req.Events(), s.Loop(), s.Token())
	relay[api.WriteEvent](req.Events(), s.Loop(), s.Token())
	req.write(s.Native(), p)
}

// TryWrite attempts a synchronous, non-queuing write. It returns the number
// of bytes written; on failure it publishes ErrorEvent and returns 0.
// Partial writes are not retried.
func (s *Stream) TryWrite(p []byte) int {
	n := s.Backend().TryWrite(s.Native(), [][]byte{p})
	if n < 0 {
		emitter.Publish(s.Events(), api.ErrorEvent{Status: api.Status(n)})
		return 0
	}
	return n
}

// Shutdown issues an asynchronous half-close of the write side. Completion
// is reported on this stream as ShutdownEvent or ErrorEvent, with the same
// one-shot request pattern as Write.
func (s *Stream) Shutdown() {
	req := newShutdownRequest(s.Loop())
	relay[api.ErrorEvent](req.Events(), s.Loop(), s.Token())
	relay[api.ShutdownEvent](req.Events(), s.Loop(), s.Token())
	req.shutdown(s.Native())
}

// Readable reports whether the stream is currently readable.
func (s *Stream) Readable() bool {
	return s.Backend().Readable(s.Native())
}

// Writable reports whether the stream is currently writable.
func (s *Stream) Writable() bool {
	return s.Backend().Writable(s.Native())
}

// SockAddr returns the stream's local address, or the zero Addr if the
// query fails. Best effort; no event is published.
func (s *Stream) SockAddr() api.Addr {
	return s.address(s.Backend().SockName)
}

// PeerAddr returns the stream's remote address, or the zero Addr if the
// query fails.
func (s *Stream) PeerAddr() api.Addr {
	return s.address(s.Backend().PeerName)
}

func (s *Stream) address(query func(*api.NativeObject, *api.SockAddr) api.Status) api.Addr {
	var sa api.SockAddr
	if query(s.Native(), &sa) != api.StatusOK {
		return api.Addr{}
	}
	return sa.Addr()
}

// relay registers a fire-once listener on a request emitter that republishes
// the completion onto the stream identified by tok. The token is a weak
// relation: if the stream is gone by completion time, the repost is dropped.
func relay[E any](em *emitter.Emitter, lp resource.Loop, tok resource.Token) {
	emitter.Once(em, func(evt E) {
		w, ok := lp.Table().Get(tok)
		if !ok {
			return
		}
		if sc, ok := w.(Streamer); ok {
			emitter.Publish(sc.StreamCore().Events(), evt)
		}
	})
}

// readTrampoline resolves the back-reference and applies the read result
// policy. The buffer handed in by the backend is consumed exactly once in
// every branch: transferred into a DataEvent, or released here.
func readTrampoline(lp resource.Loop) api.ReadCallback {
	return func(obj *api.NativeObject, nread int, buf api.Buffer) {
		w, ok := lp.Table().Get(resource.Token(obj.UserData))
		sc, isStream := w.(Streamer)
		if !ok || !isStream {
			if buf != nil {
				buf.Release()
			}
			return
		}
		s := sc.StreamCore()
		switch {
		case nread == int(api.StatusEOF):
			if buf != nil {
				buf.Release()
			}
			emitter.Publish(s.Events(), api.EndEvent{})
		case nread > 0:
			emitter.Publish(s.Events(), api.DataEvent{Buf: buf, N: nread})
		default:
			// includes allocation failures and zero-length results
			if buf != nil {
				buf.Release()
			}
			emitter.Publish(s.Events(), api.ErrorEvent{Status: api.Status(nread)})
		}
	}
}

func listenTrampoline(lp resource.Loop) api.ListenCallback {
	return func(obj *api.NativeObject, status api.Status) {
		w, ok := lp.Table().Get(resource.Token(obj.UserData))
		sc, isStream := w.(Streamer)
		if !ok || !isStream {
			return
		}
		s := sc.StreamCore()
		if status != api.StatusOK {
			emitter.Publish(s.Events(), api.ErrorEvent{Status: status})
			return
		}
		emitter.Publish(s.Events(), api.ListenEvent{})
	}
}
