// File: api/addr.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Address value types for best-effort socket name queries.

package api

import (
	"encoding/binary"
	"net"
)

// Address families understood by SockAddr decoding.
const (
	FamilyINET4 uint16 = 4
	FamilyINET6 uint16 = 6
)

// Addr is the decoded form of a socket address. The zero value means the
// query failed; address queries are best-effort and never publish errors.
type Addr struct {
	IP   string
	Port uint16
}

// SockAddr is the fixed-size native address record filled in by backend
// name queries. Port is kept in network byte order, as delivered by the
// backend.
type SockAddr struct {
	Family uint16
	Port   [2]byte
	IP     [16]byte
}

// Addr decodes the native record into an Addr. Unknown families decode to
// the zero Addr.
func (sa *SockAddr) Addr() Addr {
	var ip net.IP
	switch sa.Family {
	case FamilyINET4:
		ip = net.IP(sa.IP[:4])
	case FamilyINET6:
		ip = net.IP(sa.IP[:16])
	default:
		return Addr{}
	}
	return Addr{
		IP:   ip.String(),
		Port: binary.BigEndian.Uint16(sa.Port[:]),
	}
}
