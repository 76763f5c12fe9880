package bus_test

import (
	"testing"

	"planner/internal/bus"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())

	// Act & Assert: must be a silent no-op
	assert.NotPanics(t, func() {
		b.Publish(bus.TopicDashboard)
	})
}

func TestBus_DeliversToAllSubscribersInOrder(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())
	var order []int
	b.Subscribe(bus.TopicTasks, func(args ...any) { order = append(order, 1) })
	b.Subscribe(bus.TopicTasks, func(args ...any) { order = append(order, 2) })
	b.Subscribe(bus.TopicTasks, func(args ...any) { order = append(order, 3) })

	// Act
	b.Publish(bus.TopicTasks)

	// Assert
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_PanickingHandlerDoesNotStarveSiblings(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())
	var secondRan bool
	b.Subscribe(bus.TopicProjects, func(args ...any) { panic("boom") })
	b.Subscribe(bus.TopicProjects, func(args ...any) { secondRan = true })

	// Act
	assert.NotPanics(t, func() {
		b.Publish(bus.TopicProjects)
	})

	// Assert
	assert.True(t, secondRan)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())
	var calls int
	unsubscribe := b.Subscribe(bus.TopicMeetings, func(args ...any) { calls++ })

	// Act
	b.Publish(bus.TopicMeetings)
	unsubscribe()
	b.Publish(bus.TopicMeetings)

	// Assert
	assert.Equal(t, 1, calls)
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())
	var dashboard, tasks int
	b.Subscribe(bus.TopicDashboard, func(args ...any) { dashboard++ })
	b.Subscribe(bus.TopicTasks, func(args ...any) { tasks++ })

	// Act
	b.Publish(bus.TopicDashboard)

	// Assert
	assert.Equal(t, 1, dashboard)
	assert.Equal(t, 0, tasks)
}

func TestBus_PublishPassesArguments(t *testing.T) {
	// Arrange
	b := bus.New(zap.NewNop())
	var got []any
	b.Subscribe(bus.TopicDashboard, func(args ...any) { got = args })

	// Act
	b.Publish(bus.TopicDashboard, "projects", 3)

	// Assert
	assert.Equal(t, []any{"projects", 3}, got)
}
