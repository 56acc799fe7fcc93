// File: api/native.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native objects are the fixed-size records a reactor backend uses to track
// one handle or one in-flight operation. The core never inspects a native
// object beyond its user-data slot.

package api

// NativeKind tags the record layout a backend must allocate for a resource.
type NativeKind uint8

const (
	// KindStream is the long-lived record backing a duplex stream handle.
	KindStream NativeKind = iota + 1
	// KindShutdown is the per-operation record for an asynchronous half-close.
	KindShutdown
	// KindWrite is the per-operation record for an asynchronous write.
	KindWrite
)

func (k NativeKind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindShutdown:
		return "shutdown"
	case KindWrite:
		return "write"
	}
	return "unknown"
}

// NativeObject is the backend-owned record for one handle or one operation.
// UserData is the single opaque slot reserved for the wrapping resource; it
// holds the resource table token used by completion trampolines to find the
// wrapper instance. The backend must never interpret it.
type NativeObject struct {
	Kind     NativeKind
	UserData uint64
}
