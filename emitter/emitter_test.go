package emitter_test

import (
	"testing"

	"github.com/momentics/streamio/emitter"
)

type ping struct{ n int }
type pong struct{}

func TestPublishOrder(t *testing.T) {
	em := emitter.New()
	var got []int
	emitter.On(em, func(ping) { got = append(got, 1) })
	emitter.On(em, func(ping) { got = append(got, 2) })
	emitter.On(em, func(ping) { got = append(got, 3) })

	emitter.Publish(em, ping{})
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("listeners ran out of registration order: %v", got)
	}
}

func TestTypeIndexedDispatch(t *testing.T) {
	em := emitter.New()
	pings, pongs := 0, 0
	emitter.On(em, func(ping) { pings++ })
	emitter.On(em, func(pong) { pongs++ })

	emitter.Publish(em, ping{})
	emitter.Publish(em, ping{})
	emitter.Publish(em, pong{})
	if pings != 2 || pongs != 1 {
		t.Errorf("cross-type delivery: pings=%d pongs=%d", pings, pongs)
	}
}

func TestOnceFiresOnce(t *testing.T) {
	em := emitter.New()
	n := 0
	emitter.Once(em, func(ping) { n++ })

	emitter.Publish(em, ping{})
	emitter.Publish(em, ping{})
	if n != 1 {
		t.Errorf("once listener fired %d times", n)
	}
	if emitter.Has[ping](em) {
		t.Error("once listener still registered after firing")
	}
}

func TestOnceReentrantPublish(t *testing.T) {
	em := emitter.New()
	n := 0
	emitter.Once(em, func(ping) {
		n++
		if n == 1 {
			emitter.Publish(em, ping{})
		}
	})

	emitter.Publish(em, ping{})
	if n != 1 {
		t.Errorf("re-entrant publish fired once listener %d times", n)
	}
}

func TestOffDuringPublishKeepsSnapshot(t *testing.T) {
	em := emitter.New()
	var got []int
	var second emitter.Conn
	emitter.On(em, func(ping) {
		got = append(got, 1)
		emitter.Off[ping](em, second)
	})
	second = emitter.On(em, func(ping) { got = append(got, 2) })

	// removal mid-publish must not affect the snapshot being iterated
	emitter.Publish(em, ping{})
	if len(got) != 2 {
		t.Fatalf("first publish saw %v, want both listeners", got)
	}

	emitter.Publish(em, ping{})
	if len(got) != 3 {
		t.Errorf("removed listener still firing: %v", got)
	}
}

func TestOff(t *testing.T) {
	em := emitter.New()
	n := 0
	c := emitter.On(em, func(ping) { n++ })
	emitter.Off[ping](em, c)
	emitter.Off[ping](em, c) // double removal is a no-op

	emitter.Publish(em, ping{})
	if n != 0 {
		t.Errorf("removed listener fired %d times", n)
	}
}

func TestResetAndClear(t *testing.T) {
	em := emitter.New()
	emitter.On(em, func(ping) {})
	emitter.On(em, func(pong) {})

	emitter.Reset[ping](em)
	if emitter.Has[ping](em) {
		t.Error("reset left ping listeners behind")
	}
	if !emitter.Has[pong](em) {
		t.Error("reset removed listeners of another type")
	}

	em.Clear()
	if !em.Empty() {
		t.Error("clear left listeners behind")
	}
}

func TestPublishWithoutListeners(t *testing.T) {
	em := emitter.New()
	// publish to zero listeners is a no-op, not a fault
	emitter.Publish(em, ping{n: 42})
}
