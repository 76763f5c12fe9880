// Package aggregate composes the per-entity gateways into the denormalized
// lists the dashboard, calendar and todos screens render. All of it is pure
// data shaping; the only concurrency is firing a screen's two or three
// fetches at once.
package aggregate

import (
	"context"

	"planner/internal/model"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeProject ItemType = "project"
	ItemTypeTask    ItemType = "task"
)

// Item is the common shape projects and tasks are merged into. ProjectName
// is only ever set on a task whose project_id matched a fetched project.
type Item struct {
	ID          string
	Title       string
	Type        ItemType
	DueDate     *string
	Status      *string
	CompletedAt *string
	ProjectName *string
	Description *string
	Priority    *string
}

// Sources the aggregators fetch from. Declared here so tests and screens can
// substitute fakes without touching the gateways.
type ProjectSource interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Project, error)
}

type TaskSource interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
}

type MeetingSource interface {
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]model.Meeting, error)
}

func itemFromProject(p model.Project) Item {
	title := p.Name
	if title == "" {
		title = "Untitled Project"
	}
	return Item{
		ID:          p.ID.String(),
		Title:       title,
		Type:        ItemTypeProject,
		DueDate:     p.DueDate,
		Status:      p.Status,
		CompletedAt: p.CompletedAt,
		ProjectName: nil,
		Description: p.Description,
		Priority:    p.Priority,
	}
}

func itemFromTask(t model.Task, projectNames map[uuid.UUID]string) Item {
	title := t.Title
	if title == "" {
		title = "Untitled Task"
	}
	var projectName *string
	if t.ProjectID != nil {
		if name, ok := projectNames[*t.ProjectID]; ok {
			projectName = &name
		}
	}
	return Item{
		ID:          t.ID.String(),
		Title:       title,
		Type:        ItemTypeTask,
		DueDate:     t.DueDate,
		Status:      t.Status,
		CompletedAt: t.CompletedAt,
		ProjectName: projectName,
		Description: t.Description,
		Priority:    t.Priority,
	}
}
