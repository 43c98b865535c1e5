package events

import (
	"sync"

	"github.com/kcaldas/termblog/pkg/logging"
)

// Topic names a channel on the bus. The type parameter fixes the payload
// shape so publishers and subscribers of the same topic cannot disagree.
type Topic[T any] string

// Name returns the wire name of the topic.
func (t Topic[T]) Name() string {
	return string(t)
}

// Bus is a synchronous publish/subscribe hub. Handlers run on the
// emitting goroutine, in registration order, before Emit returns.
type Bus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
	logger      logging.Logger
}

type subscriberInfo struct {
	id      int
	handler func(any)
	once    bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
		logger:      logging.NewComponentLogger("events"),
	}
}

// Subscribe registers handler for topic and returns an unsubscribe function.
func Subscribe[T any](bus *Bus, topic Topic[T], handler func(T)) func() {
	return bus.add(topic.Name(), wrap(handler), false)
}

// SubscribeOnce registers a handler that is removed after its first delivery.
func SubscribeOnce[T any](bus *Bus, topic Topic[T], handler func(T)) func() {
	return bus.add(topic.Name(), wrap(handler), true)
}

// Emit delivers payload to every current subscriber of topic.
func Emit[T any](bus *Bus, topic Topic[T], payload T) {
	bus.emit(topic.Name(), payload)
}

func wrap[T any](handler func(T)) func(any) {
	return func(payload any) {
		handler(payload.(T))
	}
}

func (bus *Bus) add(name string, handler func(any), once bool) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[name] = append(bus.subscribers[name], subscriberInfo{
		id:      id,
		handler: handler,
		once:    once,
	})

	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		bus.removeSubscriber(name, id)
	}
}

func (bus *Bus) emit(name string, payload any) {
	bus.mu.Lock()
	subscribers := bus.subscribers[name]
	// Snapshot so handlers may subscribe or unsubscribe while we iterate.
	handlersCopy := make([]subscriberInfo, len(subscribers))
	copy(handlersCopy, subscribers)
	for _, sub := range handlersCopy {
		if sub.once {
			bus.removeSubscriber(name, sub.id)
		}
	}
	bus.mu.Unlock()

	for _, sub := range handlersCopy {
		bus.invoke(name, sub, payload)
	}
}

func (bus *Bus) invoke(name string, sub subscriberInfo, payload any) {
	defer func() {
		if r := recover(); r != nil {
			bus.logger.Error("event handler panicked", "topic", name, "panic", r)
		}
	}()
	sub.handler(payload)
}

// ListenerCount reports how many handlers are registered for a topic name.
func (bus *Bus) ListenerCount(name string) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[name])
}

// Clear removes all subscribers
func (bus *Bus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

// removeSubscriber removes a subscriber by ID (must be called with lock held).
// Order of the remaining subscribers is preserved.
func (bus *Bus) removeSubscriber(name string, id int) {
	subscribers := bus.subscribers[name]

	for i, sub := range subscribers {
		if sub.id == id {
			remaining := make([]subscriberInfo, 0, len(subscribers)-1)
			remaining = append(remaining, subscribers[:i]...)
			remaining = append(remaining, subscribers[i+1:]...)

			if len(remaining) == 0 {
				delete(bus.subscribers, name)
			} else {
				bus.subscribers[name] = remaining
			}
			break
		}
	}
}
