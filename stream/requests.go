// File: stream/requests.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot request specializations backing the asynchronous stream
// operations. Each carries its own native record, as required by backends
// that track every in-flight operation in a dedicated per-operation slot.

package stream

import (
	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/resource"
)

type writeRequest struct {
	resource.Request
}

func newWriteRequest(lp resource.Loop) *writeRequest {
	r := &writeRequest{}
	r.Init(lp, api.KindWrite, r)
	return r
}

func (r *writeRequest) write(obj *api.NativeObject, p []byte) {
	r.Exec(func() api.Status {
		return r.Backend().Write(r.Native(), obj, [][]byte{p}, completion[api.WriteEvent](r.Loop()))
	})
}

type shutdownRequest struct {
	resource.Request
}

func newShutdownRequest(lp resource.Loop) *shutdownRequest {
	r := &shutdownRequest{}
	r.Init(lp, api.KindShutdown, r)
	return r
}

func (r *shutdownRequest) shutdown(obj *api.NativeObject) {
	r.Exec(func() api.Status {
		return r.Backend().Shutdown(r.Native(), obj, completion[api.ShutdownEvent](r.Loop()))
	})
}

// completion is the trampoline for one-shot operations: it resolves the
// request record's back-reference and settles the request with either the
// success event E or an ErrorEvent.
func completion[E any](lp resource.Loop) api.CompletionCallback {
	return func(req *api.NativeObject, status api.Status) {
		w, ok := lp.Table().Get(resource.Token(req.UserData))
		if !ok {
			return
		}
		rq, ok := w.(resource.Requester)
		if !ok {
			return
		}
		var evt E
		resource.Settle(rq.RequestCore(), status, evt)
	}
}
