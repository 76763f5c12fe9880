package aggregate

import (
	"context"

	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats backs the dashboard's counter cards. TotalTodos is the project and
// task counts combined; the completed/pending split applies the shared
// completion rule to the same rows.
type Stats struct {
	TotalProjects  int
	TotalTasks     int
	TotalMeetings  int
	TotalTodos     int
	CompletedTodos int
	PendingTodos   int
}

type Dashboard struct {
	projects ProjectSource
	tasks    TaskSource
	meetings MeetingSource
	log      *zap.Logger
}

func NewDashboard(projects ProjectSource, tasks TaskSource, meetings MeetingSource, log *zap.Logger) *Dashboard {
	return &Dashboard{projects: projects, tasks: tasks, meetings: meetings, log: log}
}

// Load fetches projects, tasks and meetings in parallel and folds them into
// Stats. Each fetch that fails is logged and contributes zero; the others
// still count. A nil user returns zero stats without fetching.
func (d *Dashboard) Load(ctx context.Context, user *supabase.User) Stats {
	if user == nil {
		return Stats{}
	}

	var (
		projects []model.Project
		tasks    []model.Task
		meetings []model.Meeting
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := d.projects.ListByOwner(gctx, user.ID)
		if err != nil {
			d.log.Error("dashboard projects fetch failed", zap.Error(err))
			return nil
		}
		projects = rows
		return nil
	})
	g.Go(func() error {
		rows, err := d.tasks.ListForUser(gctx, user.ID)
		if err != nil {
			d.log.Error("dashboard tasks fetch failed", zap.Error(err))
			return nil
		}
		tasks = rows
		return nil
	})
	g.Go(func() error {
		rows, err := d.meetings.ListByCreator(gctx, user.ID)
		if err != nil {
			d.log.Error("dashboard meetings fetch failed", zap.Error(err))
			return nil
		}
		meetings = rows
		return nil
	})
	_ = g.Wait()

	projectNames := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	stats := Stats{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
		TotalMeetings: len(meetings),
		TotalTodos:    len(projects) + len(tasks),
	}
	for _, p := range projects {
		if IsComplete(itemFromProject(p)) {
			stats.CompletedTodos++
		} else {
			stats.PendingTodos++
		}
	}
	for _, t := range tasks {
		if IsComplete(itemFromTask(t, projectNames)) {
			stats.CompletedTodos++
		} else {
			stats.PendingTodos++
		}
	}
	return stats
}
