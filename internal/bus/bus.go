// Package bus implements the in-process refresh bus screens use to tell each
// other "my data changed, refetch yours". It stands in for the backend's own
// change stream, which this client does not consume.
package bus

import (
	"sync"

	"go.uber.org/zap"
)

// Topics published after mutations. A consumer typically subscribes to every
// topic that could make its data stale, not just its own entity's.
const (
	TopicDashboard = "refreshDashboard"
	TopicTasks     = "refreshTasks"
	TopicProjects  = "refreshProjects"
	TopicMeetings  = "refreshMeetings"
)

type Handler func(args ...any)

type subscription struct {
	id int
	fn Handler
}

// Bus delivers published events synchronously, in registration order, on the
// publishing goroutine. It is constructed once at the composition root and
// handed to producers and consumers explicitly; there is no package-level
// instance.
type Bus struct {
	log *zap.Logger

	mu     sync.Mutex
	topics map[string][]subscription
	nextID int
}

func New(log *zap.Logger) *Bus {
	return &Bus{
		log:    log,
		topics: make(map[string][]subscription),
	}
}

// Subscribe registers a handler and returns a function that removes it.
// Subscribing the same handler twice registers it twice.
func (b *Bus) Subscribe(topic string, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.topics[topic] = append(b.topics[topic], subscription{id: id, fn: fn})

	return func() {
		b.unsubscribe(topic, id)
	}
}

func (b *Bus) unsubscribe(topic string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[topic]
	for i, s := range subs {
		if s.id == id {
			b.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every handler subscribed to the topic. A handler that
// panics is recovered and logged; its siblings still run and the publisher
// never sees a failure. Publishing with no subscribers is a no-op.
func (b *Bus) Publish(topic string, args ...any) {
	b.mu.Lock()
	subs := make([]subscription, len(b.topics[topic]))
	copy(subs, b.topics[topic])
	b.mu.Unlock()

	for _, s := range subs {
		b.invoke(topic, s, args)
	}
}

func (b *Bus) invoke(topic string, s subscription, args []any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("refresh handler panicked",
				zap.String("topic", topic),
				zap.Any("panic", r))
		}
	}()
	s.fn(args...)
}
