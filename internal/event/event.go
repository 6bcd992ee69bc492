// internal/event/event.go
package event

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/pkg/logger"
)

// Name identifies the kind of an event.
type Name string

// Args is the untyped argument bag carried by an event.
type Args map[string]interface{}

// Event is a named message passed by value to every subscriber.
type Event struct {
	Name Name
	Args Args
	ID   string
}

// New creates an event with the given name and arguments.
func New(name Name, args Args) Event {
	return Event{Name: name, Args: args}
}

// Handler receives every published event. Handlers filter by name themselves;
// the return value only reports whether the event was handled and is used for
// logging, never for control flow.
type Handler interface {
	OnEvent(e Event) bool
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(e Event) bool

func (f HandlerFunc) OnEvent(e Event) bool { return f(e) }

// Bus is a synchronous publish/subscribe relay. Subscribers are keyed and run
// in registration order. It is not safe for concurrent use; the game only
// touches it from the simulation loop.
type Bus struct {
	keys     []string
	handlers map[string]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string]Handler),
	}
}

// Subscribe registers handler under key. Re-using a key replaces the handler
// but keeps its original position.
func (b *Bus) Subscribe(key string, handler Handler) {
	if _, exists := b.handlers[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.handlers[key] = handler
}

// Unsubscribe removes the handler registered under key and reports whether
// one existed.
func (b *Bus) Unsubscribe(key string) bool {
	if _, exists := b.handlers[key]; !exists {
		return false
	}
	delete(b.handlers, key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	return len(b.keys)
}

// Publish assigns an id when missing and hands the event to every subscriber
// before returning. Subscribers registered or removed while a publish is in
// flight take effect from the next publish on. Handlers that publish in turn
// must not form a cycle.
func (b *Bus) Publish(e Event) Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	handlers := make([]Handler, len(keys))
	for i, key := range keys {
		handlers[i] = b.handlers[key]
	}
	for i, handler := range handlers {
		key := keys[i]
		if handler.OnEvent(e) {
			logger.Log.WithFields(logrus.Fields{
				"component":  "event",
				"subscriber": key,
				"event":      e.Name,
				"event_id":   e.ID,
			}).Debug("event handled")
		}
	}
	return e
}
