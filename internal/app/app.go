// Package app builds the object graph: config, logger, backend client,
// refresh bus, session holder, gateways and aggregators, wired once and
// threaded down explicitly. Nothing in the tree is a package-level global.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"planner/internal/aggregate"
	"planner/internal/bus"
	"planner/internal/config"
	"planner/internal/gateway"
	"planner/internal/logging"
	"planner/internal/session"
	"planner/internal/supabase"

	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Client  *supabase.Client
	Bus     *bus.Bus
	Session *session.Holder

	Profiles *gateway.ProfileGateway
	Projects *gateway.ProjectGateway
	Tasks    *gateway.TaskGateway
	Todos    *gateway.TodoGateway
	Meetings *gateway.MeetingGateway

	Merger    *aggregate.Merger
	Dashboard *aggregate.Dashboard

	stopPersist func()
}

func Init(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey,
		time.Duration(cfg.HTTPTimeoutSecs)*time.Second, log)

	sessionFile := sessionFilePath()
	if err := client.LoadSessionFromFile(sessionFile); err != nil {
		log.Warn("could not restore session", zap.Error(err))
	}
	stopPersist := client.PersistSessionToFile(sessionFile)

	b := bus.New(log)

	profiles := gateway.NewProfileGateway(client, log)
	projects := gateway.NewProjectGateway(client, b, log)
	tasks := gateway.NewTaskGateway(client, b, log)
	todos := gateway.NewTodoGateway(client, b, log)
	meetings := gateway.NewMeetingGateway(client, b, log)

	holder := session.NewHolder(client, profiles, log)
	holder.Initialize(ctx)

	return &App{
		Config:      cfg,
		Log:         log,
		Client:      client,
		Bus:         b,
		Session:     holder,
		Profiles:    profiles,
		Projects:    projects,
		Tasks:       tasks,
		Todos:       todos,
		Meetings:    meetings,
		Merger:      aggregate.NewMerger(projects, tasks, log),
		Dashboard:   aggregate.NewDashboard(projects, tasks, meetings, log),
		stopPersist: stopPersist,
	}, nil
}

func (a *App) Close() {
	a.Session.Close()
	if a.stopPersist != nil {
		a.stopPersist()
	}
	_ = a.Log.Sync()
}

func sessionFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planner-session.json"
	}
	return filepath.Join(home, ".planner", "session.json")
}
