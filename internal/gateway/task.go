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

type TaskGateway struct {
	client *supabase.Client
	bus    *bus.Bus
	log    *zap.Logger
}

type TaskGatewayInterface interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, input model.TaskInput) (*model.Task, error)
	Update(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (*model.Task, error)
	Complete(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskGatewayInterface = (*TaskGateway)(nil)

func NewTaskGateway(client *supabase.Client, b *bus.Bus, log *zap.Logger) *TaskGateway {
	return &TaskGateway{client: client, bus: b, log: log}
}

// ListForUser returns tasks the user created or is assigned to, newest-first.
func (g *TaskGateway) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks := []model.Task{}
	err := g.client.From("tasks").
		Select().
		Or(fmt.Sprintf("created_by.eq.%s,assigned_to.eq.%s", userID, userID)).
		Order("created_at", false).
		ExecuteInto(ctx, &tasks)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (g *TaskGateway) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	tasks := []model.Task{}
	err := g.client.From("tasks").
		Select().
		Eq("project_id", projectID.String()).
		Order("created_at", false).
		ExecuteInto(ctx, &tasks)
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}
	return tasks, nil
}

func (g *TaskGateway) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := g.client.From("tasks").
		Select().
		Eq("id", id.String()).
		Limit(1).
		Single().
		ExecuteInto(ctx, &task)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

func (g *TaskGateway) Create(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var task model.Task
	err := g.client.From("tasks").
		Insert(input).
		Single().
		ExecuteInto(ctx, &task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	g.bus.Publish(bus.TopicTasks)
	return &task, nil
}

func (g *TaskGateway) Update(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (*model.Task, error) {
	var task model.Task
	err := g.client.From("tasks").
		Update(patch).
		Eq("id", id.String()).
		Single().
		ExecuteInto(ctx, &task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	g.bus.Publish(bus.TopicTasks)
	return &task, nil
}

// Complete stamps both completion signals at once so status and
// completed_at cannot drift for rows written by this client.
func (g *TaskGateway) Complete(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	status := model.TaskStatusCompleted
	completedAt := nowTimestamp()
	return g.Update(ctx, id, model.TaskPatch{
		Status:      &status,
		CompletedAt: &completedAt,
	})
}

func (g *TaskGateway) Delete(ctx context.Context, id uuid.UUID) error {
	err := g.client.From("tasks").
		Delete().
		Eq("id", id.String()).
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	g.bus.Publish(bus.TopicTasks)
	return nil
}
