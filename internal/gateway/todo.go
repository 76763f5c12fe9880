package gateway

import (
	"context"
	"fmt"

	"planner/internal/bus"
	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TodoGateway serves the standalone todos table. The merged projects+tasks
// view has mostly replaced it on screen, but the table is still read for the
// dashboard counters and writable from the todo commands.
type TodoGateway struct {
	client *supabase.Client
	bus    *bus.Bus
	log    *zap.Logger
}

// CompletionSummary is the completed/pending split over a user's todos.
type CompletionSummary struct {
	Completed int
	Pending   int
}

func NewTodoGateway(client *supabase.Client, b *bus.Bus, log *zap.Logger) *TodoGateway {
	return &TodoGateway{client: client, bus: b, log: log}
}

func (g *TodoGateway) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := g.client.From("todos").
		Select().
		Eq("user_id", userID.String()).
		ExecuteInto(ctx, &todos)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (g *TodoGateway) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	todos := []model.Todo{}
	err := g.client.From("todos").
		Select("id").
		Eq("user_id", userID.String()).
		ExecuteInto(ctx, &todos)
	if err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return len(todos), nil
}

func (g *TodoGateway) CompletionSummary(ctx context.Context, userID uuid.UUID) (CompletionSummary, error) {
	todos := []model.Todo{}
	err := g.client.From("todos").
		Select("is_completed").
		Eq("user_id", userID.String()).
		ExecuteInto(ctx, &todos)
	if err != nil {
		return CompletionSummary{}, fmt.Errorf("summarize todos: %w", err)
	}

	var summary CompletionSummary
	for _, todo := range todos {
		if todo.IsCompleted {
			summary.Completed++
		} else {
			summary.Pending++
		}
	}
	return summary, nil
}

func (g *TodoGateway) Create(ctx context.Context, input model.TodoInput) (*model.Todo, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var todo model.Todo
	err := g.client.From("todos").
		Insert(input).
		Single().
		ExecuteInto(ctx, &todo)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	return &todo, nil
}

func (g *TodoGateway) Update(ctx context.Context, id uuid.UUID, patch model.TodoPatch) (*model.Todo, error) {
	var todo model.Todo
	err := g.client.From("todos").
		Update(patch).
		Eq("id", id.String()).
		Single().
		ExecuteInto(ctx, &todo)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	return &todo, nil
}

// Toggle flips completion, setting completed_at when completing and
// explicitly nulling it when not.
func (g *TodoGateway) Toggle(ctx context.Context, id uuid.UUID, completed bool) (*model.Todo, error) {
	body := model.TodoToggle{IsCompleted: completed}
	if completed {
		now := nowTimestamp()
		body.CompletedAt = &now
	}

	var todo model.Todo
	err := g.client.From("todos").
		Update(body).
		Eq("id", id.String()).
		Single().
		ExecuteInto(ctx, &todo)
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	return &todo, nil
}

func (g *TodoGateway) Delete(ctx context.Context, id uuid.UUID) error {
	err := g.client.From("todos").
		Delete().
		Eq("id", id.String()).
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	return nil
}
