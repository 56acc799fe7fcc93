package api_test

import (
	"testing"

	"github.com/momentics/streamio/api"
)

func TestStatusErr(t *testing.T) {
	if err := api.StatusOK.Err(); err != nil {
		t.Errorf("StatusOK.Err() = %v", err)
	}
	err := api.StatusECONNRESET.Err()
	if err == nil {
		t.Fatal("negative status produced no error")
	}
	if err.Error() != api.StatusECONNRESET.Str() {
		t.Errorf("Error() = %q, Str() = %q", err.Error(), api.StatusECONNRESET.Str())
	}
}

func TestStatusStrUnknown(t *testing.T) {
	if s := api.Status(-99999).Str(); s == "" {
		t.Error("unknown status produced empty description")
	}
}

func TestSockAddrDecode(t *testing.T) {
	sa := api.SockAddr{Family: api.FamilyINET4, Port: [2]byte{0x1f, 0x90}}
	copy(sa.IP[:], []byte{192, 168, 0, 10})

	addr := sa.Addr()
	if addr.IP != "192.168.0.10" || addr.Port != 8080 {
		t.Errorf("Addr = %+v", addr)
	}
}

func TestSockAddrDecodeV6(t *testing.T) {
	sa := api.SockAddr{Family: api.FamilyINET6, Port: [2]byte{0x00, 0x50}}
	sa.IP[15] = 1

	addr := sa.Addr()
	if addr.IP != "::1" || addr.Port != 80 {
		t.Errorf("Addr = %+v", addr)
	}
}

func TestSockAddrUnknownFamily(t *testing.T) {
	sa := api.SockAddr{Family: 99}
	if got := sa.Addr(); got != (api.Addr{}) {
		t.Errorf("Addr = %+v, want zero", got)
	}
}

func TestNativeKindString(t *testing.T) {
	if api.KindStream.String() != "stream" || api.KindWrite.String() != "write" {
		t.Error("kind names wrong")
	}
	if api.NativeKind(0).String() != "unknown" {
		t.Error("zero kind not unknown")
	}
}
