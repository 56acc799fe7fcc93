package loop_test

import (
	"testing"

	"github.com/brickingsoft/errors"

	"github.com/momentics/streamio/fake"
	"github.com/momentics/streamio/loop"
	"github.com/momentics/streamio/stream"
)

func TestNewRequiresBackend(t *testing.T) {
	if _, err := loop.New(nil); !errors.Is(err, loop.ErrNilBackend) {
		t.Errorf("New(nil) = %v, want ErrNilBackend", err)
	}
}

func TestDeferRunsNextIteration(t *testing.T) {
	lp, err := loop.New(fake.New())
	if err != nil {
		t.Fatal(err)
	}

	var order []string
	lp.Defer(func() {
		order = append(order, "first")
		lp.Defer(func() { order = append(order, "second") })
	})

	lp.Step()
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("after one step: %v", order)
	}

	lp.Step()
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("after two steps: %v", order)
	}
}

func TestStepCountsCallbacks(t *testing.T) {
	be := fake.New()
	lp, err := loop.New(be)
	if err != nil {
		t.Fatal(err)
	}
	s := stream.New(lp)

	s.Write([]byte("a"))
	lp.Defer(func() {})

	if n := lp.Step(); n != 2 {
		t.Errorf("Step = %d, want 2 (one completion, one deferred)", n)
	}
	if n := lp.Step(); n != 0 {
		t.Errorf("idle Step = %d, want 0", n)
	}
}

func TestRunDrainsAndReturns(t *testing.T) {
	be := fake.New()
	lp, err := loop.New(be)
	if err != nil {
		t.Fatal(err)
	}
	s := stream.New(lp)

	s.Write([]byte("payload"))
	s.Close()

	// Run must settle the write, finish the close and return once nothing
	// is alive
	if err := lp.Run(); err != nil {
		t.Fatal(err)
	}
	if lp.Alive() != 0 {
		t.Errorf("alive = %d after Run", lp.Alive())
	}
	if be.Frees() != 2 {
		t.Errorf("frees = %d, want 2", be.Frees())
	}
}

func TestStopFromCallback(t *testing.T) {
	lp, err := loop.New(fake.New())
	if err != nil {
		t.Fatal(err)
	}
	// a live stream would otherwise keep Run iterating
	_ = stream.New(lp)

	lp.Defer(func() { lp.Stop() })
	if err := lp.Run(); err != nil {
		t.Fatal(err)
	}
	if lp.Alive() != 1 {
		t.Errorf("alive = %d, want the untouched stream", lp.Alive())
	}
}
