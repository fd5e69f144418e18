package events

import (
	"fmt"
	"log/slog"
	"sync"
)

// Handler receives the positional arguments of an event.
type Handler func(args ...any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	name Name
	id   uint64
}

type listener struct {
	id      uint64
	handler Handler
	once    bool
}

// Emitter is a name-keyed, synchronous publish/subscribe registry.
// Handlers for a name run in registration order on the emitting
// goroutine. A panicking handler is logged and does not prevent the
// remaining handlers from running.
type Emitter struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[Name][]listener
	log       *slog.Logger
}

func NewEmitter(log *slog.Logger) *Emitter {
	if log == nil {
		log = slog.Default()
	}
	return &Emitter{
		listeners: make(map[Name][]listener),
		log:       log,
	}
}

// On registers handler for every future emission of name.
func (e *Emitter) On(name Name, handler Handler) Subscription {
	return e.add(name, handler, false)
}

// Once registers handler for the next emission of name only.
func (e *Emitter) Once(name Name, handler Handler) Subscription {
	return e.add(name, handler, true)
}

func (e *Emitter) add(name Name, handler Handler, once bool) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.listeners[name] = append(e.listeners[name], listener{
		id:      e.nextID,
		handler: handler,
		once:    once,
	})
	return Subscription{name: name, id: e.nextID}
}

// Off removes a subscription. It reports whether the subscription was
// still registered.
func (e *Emitter) Off(sub Subscription) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeLocked(sub.name, sub.id)
}

func (e *Emitter) removeLocked(name Name, id uint64) bool {
	current := e.listeners[name]
	for i, l := range current {
		if l.id != id {
			continue
		}
		next := make([]listener, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		if len(next) == 0 {
			delete(e.listeners, name)
		} else {
			e.listeners[name] = next
		}
		return true
	}
	return false
}

// ListenerCount returns the number of handlers registered for name.
func (e *Emitter) ListenerCount(name Name) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[name])
}

// Emit delivers args to every handler registered for name and returns
// how many were invoked. Handlers added during delivery are not called
// for this emission.
func (e *Emitter) Emit(name Name, args ...any) int {
	e.mu.Lock()
	snapshot := e.listeners[name]
	for _, l := range snapshot {
		if l.once {
			e.removeLocked(name, l.id)
		}
	}
	e.mu.Unlock()

	for _, l := range snapshot {
		e.invoke(name, l.handler, args)
	}
	return len(snapshot)
}

func (e *Emitter) invoke(name Name, handler Handler, args []any) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("event handler panicked", "event", name, "panic", fmt.Sprint(r))
		}
	}()
	handler(args...)
}
