package main

import (
	"errors"
	"fmt"
	"time"

	"planner/internal/app"
	"planner/internal/session"
	"planner/internal/supabase"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Projects, tasks, todos and meetings from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newCalendarCmd(a),
		newTodosViewCmd(a),
		newProjectCmd(a),
		newTaskCmd(a),
		newMeetingCmd(a),
		newTodoCmd(a),
	)
	return root
}

// requireUser gates every data command the way the screens gate fetches:
// nothing runs until the session holder has resolved to a signed-in user.
func requireUser(a *app.App) (*supabase.User, error) {
	user, err := a.Session.RequireUser()
	if errors.Is(err, session.ErrNotAuthenticated) {
		return nil, fmt.Errorf("not signed in; run `planner login` first")
	}
	return user, err
}

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

// optional turns an unset flag into an absent patch field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
