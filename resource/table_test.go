package resource_test

import (
	"testing"

	"github.com/momentics/streamio/resource"
)

func TestTablePutGet(t *testing.T) {
	tbl := resource.NewTable()
	tok := tbl.Put("alpha")

	v, ok := tbl.Get(tok)
	if !ok || v.(string) != "alpha" {
		t.Fatalf("Get(%v) = %v, %v", tok, v, ok)
	}
	if tbl.Live() != 1 {
		t.Errorf("Live() = %d, want 1", tbl.Live())
	}
}

func TestTableZeroToken(t *testing.T) {
	tbl := resource.NewTable()
	if _, ok := tbl.Get(0); ok {
		t.Error("zero token resolved")
	}
	tbl.Pin(0)
	tbl.Unpin(0)
	tbl.Drop(0)
}

func TestTableDrop(t *testing.T) {
	tbl := resource.NewTable()
	tok := tbl.Put("alpha")
	tbl.Drop(tok)

	if _, ok := tbl.Get(tok); ok {
		t.Error("dropped token still resolves")
	}
	if tbl.Live() != 0 {
		t.Errorf("Live() = %d after drop", tbl.Live())
	}
}

func TestTableStaleTokenAfterReuse(t *testing.T) {
	tbl := resource.NewTable()
	old := tbl.Put("alpha")
	tbl.Drop(old)

	// the freed slot is reused for the next entry
	fresh := tbl.Put("beta")
	if _, ok := tbl.Get(old); ok {
		t.Error("stale token resolved against a recycled slot")
	}
	v, ok := tbl.Get(fresh)
	if !ok || v.(string) != "beta" {
		t.Errorf("fresh token failed to resolve: %v, %v", v, ok)
	}
}

func TestTablePinDefersRecycle(t *testing.T) {
	tbl := resource.NewTable()
	tok := tbl.Put("alpha")
	tbl.Pin(tok)
	tbl.Drop(tok)

	// dropped entries never resolve, pinned or not
	if _, ok := tbl.Get(tok); ok {
		t.Error("dropped token resolved while pinned")
	}

	// the slot must not be recycled until the pin is gone
	other := tbl.Put("beta")
	if other == tok {
		t.Error("pinned slot was recycled")
	}
	tbl.Unpin(tok)

	third := tbl.Put("gamma")
	if _, ok := tbl.Get(tok); ok {
		t.Error("stale token resolved after recycle")
	}
	if _, ok := tbl.Get(third); !ok {
		t.Error("recycled slot failed to resolve fresh entry")
	}
}

func TestTablePinStaleIsNoop(t *testing.T) {
	tbl := resource.NewTable()
	tok := tbl.Put("alpha")
	tbl.Drop(tok)
	tbl.Unpin(tok) // extra unpin on a stale token must not corrupt the slot

	fresh := tbl.Put("beta")
	if v, ok := tbl.Get(fresh); !ok || v.(string) != "beta" {
		t.Errorf("slot corrupted by stale unpin: %v, %v", v, ok)
	}
}
