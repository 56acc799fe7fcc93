// File: emitter/emitter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package emitter

import "reflect"

// Conn identifies one listener registration. It is only meaningful to the
// Emitter that issued it.
type Conn uint64

type handler struct {
	id   Conn
	fn   func(any)
	once bool
}

// Emitter dispatches typed events to listeners registered per event type.
// The zero value is not ready for use; call New.
type Emitter struct {
	next     Conn
	handlers map[reflect.Type][]handler
}

// New returns an empty Emitter.
func New() *Emitter {
	return &Emitter{handlers: make(map[reflect.Type][]handler)}
}

func typeOf[E any]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

func (em *Emitter) register(t reflect.Type, fn func(any), once bool) Conn {
	em.next++
	id := em.next
	old := em.handlers[t]
	list := make([]handler, len(old)+1)
	copy(list, old)
	list[len(old)] = handler{id: id, fn: fn, once: once}
	em.handlers[t] = list
	return id
}

func (em *Emitter) remove(t reflect.Type, id Conn) {
	old := em.handlers[t]
	for i := range old {
		if old[i].id != id {
			continue
		}
		list := make([]handler, 0, len(old)-1)
		list = append(list, old[:i]...)
		list = append(list, old[i+1:]...)
		if len(list) == 0 {
			delete(em.handlers, t)
		} else {
			em.handlers[t] = list
		}
		return
	}
}

// On registers a persistent listener for events of type E.
func On[E any](em *Emitter, fn func(E)) Conn {
	return em.register(typeOf[E](), func(v any) { fn(v.(E)) }, false)
}

// Once registers a listener removed automatically after its first
// invocation.
func Once[E any](em *Emitter, fn func(E)) Conn {
	return em.register(typeOf[E](), func(v any) { fn(v.(E)) }, true)
}

// Off removes the listener for E identified by c. Removing an unknown or
// already-removed listener is a no-op.
func Off[E any](em *Emitter, c Conn) {
	em.remove(typeOf[E](), c)
}

// Publish synchronously invokes every listener currently registered for E,
// in registration order, before returning. Publishing with no listeners is
// a no-op. Errors raised by listeners are not caught here.
func Publish[E any](em *Emitter, evt E) {
	t := typeOf[E]()
	list := em.handlers[t]
	for _, h := range list {
		if h.once {
			// removed before the call so a re-entrant publish cannot
			// fire it twice
			em.remove(t, h.id)
		}
		h.fn(evt)
	}
}

// Has reports whether at least one listener is registered for E.
func Has[E any](em *Emitter) bool {
	return len(em.handlers[typeOf[E]()]) > 0
}

// Reset drops every listener registered for E.
func Reset[E any](em *Emitter) {
	delete(em.handlers, typeOf[E]())
}

// Clear drops all listeners for all event types.
func (em *Emitter) Clear() {
	em.handlers = make(map[reflect.Type][]handler)
}

// Empty reports whether no listeners are registered at all.
func (em *Emitter) Empty() bool {
	return len(em.handlers) == 0
}
