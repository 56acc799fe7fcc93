// File: api/status_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Errno-derived status codes on Linux. Values follow the negative-errno
// convention used by the reactor backends.

//go:build linux

package api

import "golang.org/x/sys/unix"

var (
	StatusEAGAIN     = Status(-int(unix.EAGAIN))
	StatusECANCELED  = Status(-int(unix.ECANCELED))
	StatusECONNRESET = Status(-int(unix.ECONNRESET))
	StatusEINVAL     = Status(-int(unix.EINVAL))
	StatusENOBUFS    = Status(-int(unix.ENOBUFS))
	StatusENOTCONN   = Status(-int(unix.ENOTCONN))
	StatusEPIPE      = Status(-int(unix.EPIPE))
)

func init() {
	statusNames[StatusEAGAIN] = "resource temporarily unavailable"
	statusNames[StatusECANCELED] = "operation canceled"
	statusNames[StatusECONNRESET] = "connection reset by peer"
	statusNames[StatusEINVAL] = "invalid argument"
	statusNames[StatusENOBUFS] = "no buffer space available"
	statusNames[StatusENOTCONN] = "socket is not connected"
	statusNames[StatusEPIPE] = "broken pipe"
}
