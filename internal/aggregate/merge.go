package aggregate

import (
	"context"

	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Merger builds the combined projects+tasks list behind the calendar and
// todos screens.
type Merger struct {
	projects ProjectSource
	tasks    TaskSource
	log      *zap.Logger
}

func NewMerger(projects ProjectSource, tasks TaskSource, log *zap.Logger) *Merger {
	return &Merger{projects: projects, tasks: tasks, log: log}
}

// Merged fetches the user's projects and tasks in parallel and maps both
// into Items, resolving each task's project name through the fetched
// projects. A failed fetch contributes an empty list instead of failing the
// whole screen, so the group below never returns an error. A nil user yields
// an empty list without fetching.
func (m *Merger) Merged(ctx context.Context, user *supabase.User) []Item {
	if user == nil {
		return []Item{}
	}

	var (
		projects []model.Project
		tasks    []model.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := m.projects.ListByOwner(gctx, user.ID)
		if err != nil {
			m.log.Error("projects fetch failed", zap.Error(err))
			return nil
		}
		projects = rows
		return nil
	})
	g.Go(func() error {
		rows, err := m.tasks.ListForUser(gctx, user.ID)
		if err != nil {
			m.log.Error("tasks fetch failed", zap.Error(err))
			return nil
		}
		tasks = rows
		return nil
	})
	_ = g.Wait()

	projectNames := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	merged := make([]Item, 0, len(projects)+len(tasks))
	for _, p := range projects {
		merged = append(merged, itemFromProject(p))
	}
	for _, t := range tasks {
		merged = append(merged, itemFromTask(t, projectNames))
	}
	return merged
}
