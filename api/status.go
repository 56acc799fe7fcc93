// File: api/status.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reactor status codes. Zero is success, negative values are errno-style
// failure codes as reported by the reactor backend.

package api

import "fmt"

// Status is a reactor result code. Zero means success; negative values are
// failures in the backend's native numbering. StatusEOF is reserved outside
// the errno range to mark a clean peer close on the read path.
type Status int

const (
	StatusOK  Status = 0
	StatusEOF Status = -4095
)

// statusNames maps the platform-derived codes to short descriptions.
// Populated by the platform status files.
var statusNames = map[Status]string{
	StatusOK:  "ok",
	StatusEOF: "end of stream",
}

// Str returns a short human-readable description of the status.
func (s Status) Str() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("reactor error %d", int(s))
}

// Err returns nil for success statuses and a descriptive error otherwise.
func (s Status) Err() error {
	if s >= StatusOK {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusError wraps a failure Status as a Go error for code that leaves the
// event-driven world, e.g. logging and facade plumbing.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return e.Status.Str()
}
