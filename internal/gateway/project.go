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

type ProjectGateway struct {
	client *supabase.Client
	bus    *bus.Bus
	log    *zap.Logger
}

type ProjectGatewayInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, input model.ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

var _ ProjectGatewayInterface = (*ProjectGateway)(nil)

func NewProjectGateway(client *supabase.Client, b *bus.Bus, log *zap.Logger) *ProjectGateway {
	return &ProjectGateway{client: client, bus: b, log: log}
}

// ListByOwner returns the owner's projects newest-first.
func (g *ProjectGateway) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Project, error) {
	projects := []model.Project{}
	err := g.client.From("projects").
		Select().
		Eq("owner_id", ownerID.String()).
		Order("created_at", false).
		ExecuteInto(ctx, &projects)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (g *ProjectGateway) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := g.client.From("projects").
		Select().
		Eq("id", id.String()).
		Limit(1).
		Single().
		ExecuteInto(ctx, &project)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

// GetByIDForOwner additionally filters on owner_id, so another user's
// project reads as not found rather than leaking.
func (g *ProjectGateway) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := g.client.From("projects").
		Select().
		Eq("id", id.String()).
		Eq("owner_id", ownerID.String()).
		Limit(1).
		Single().
		ExecuteInto(ctx, &project)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

func (g *ProjectGateway) Create(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var project model.Project
	err := g.client.From("projects").
		Insert(input).
		Single().
		ExecuteInto(ctx, &project)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	g.bus.Publish(bus.TopicProjects)
	return &project, nil
}

func (g *ProjectGateway) Update(ctx context.Context, id, ownerID uuid.UUID, patch model.ProjectPatch) (*model.Project, error) {
	var project model.Project
	err := g.client.From("projects").
		Update(patch).
		Eq("id", id.String()).
		Eq("owner_id", ownerID.String()).
		Single().
		ExecuteInto(ctx, &project)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	g.bus.Publish(bus.TopicProjects)
	return &project, nil
}

// Delete removes the project and nudges listeners; the refresh publish can
// never undo a successful delete.
func (g *ProjectGateway) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := g.client.From("projects").
		Delete().
		Eq("id", id.String()).
		Eq("owner_id", ownerID.String()).
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	g.bus.Publish(bus.TopicDashboard)
	g.bus.Publish(bus.TopicProjects)
	return nil
}
