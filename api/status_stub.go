// File: api/status_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed status values for platforms without errno bindings. The numbers
// match the common Linux errno assignments so test doubles behave the same
// everywhere.

//go:build !linux

package api

var (
	StatusEAGAIN     = Status(-11)
	StatusECANCELED  = Status(-125)
	StatusECONNRESET = Status(-104)
	StatusEINVAL     = Status(-22)
	StatusENOBUFS    = Status(-105)
	StatusENOTCONN   = Status(-107)
	StatusEPIPE      = Status(-32)
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
