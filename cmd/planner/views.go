package main

import (
	"fmt"
	"time"

	"planner/internal/aggregate"
	"planner/internal/app"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the counters the dashboard screen shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			stats := a.Dashboard.Load(cmd.Context(), user)
			fmt.Printf("Projects:  %d\n", stats.TotalProjects)
			fmt.Printf("Tasks:     %d\n", stats.TotalTasks)
			fmt.Printf("Meetings:  %d\n", stats.TotalMeetings)
			fmt.Printf("Todos:     %d (%d done, %d pending)\n",
				stats.TotalTodos, stats.CompletedTodos, stats.PendingTodos)
			return nil
		},
	}
}

func newTodosViewCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "todos",
		Short: "Merged projects+tasks list, due date ascending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			items := a.Merger.Merged(cmd.Context(), user)
			aggregate.SortTodos(items, time.Local)

			completed, pending := aggregate.CompletionCounts(items)
			fmt.Printf("Done: %d  Pending: %d\n\n", completed, pending)
			for _, item := range items {
				printItem(item)
			}
			return nil
		},
	}
}

func newCalendarCmd(a *app.App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Items due on a day (default today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			if day == "" {
				day = aggregate.DayKey(time.Now(), time.Local)
			} else if _, err := time.Parse("2006-01-02", day); err != nil {
				return fmt.Errorf("invalid --day %q, want YYYY-MM-DD", day)
			}

			items := a.Merger.Merged(cmd.Context(), user)
			due := aggregate.ItemsForDay(items, day, time.Local)
			highlighted := aggregate.DayHighlighted(items, day, time.Local)

			marker := " "
			if highlighted {
				marker = "•"
			}
			fmt.Printf("%s %s — %d item(s)\n\n", marker, day, len(due))
			for _, item := range due {
				printItem(item)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day to show, YYYY-MM-DD")
	return cmd
}

func printItem(item aggregate.Item) {
	state := "pending"
	if aggregate.IsComplete(item) {
		state = "done"
	}
	line := fmt.Sprintf("[%s] %-7s %s", state, item.Type, item.Title)
	if item.ProjectName != nil {
		line += fmt.Sprintf(" (project: %s)", *item.ProjectName)
	}
	if item.DueDate != nil {
		line += fmt.Sprintf("  due %s", *item.DueDate)
	}
	fmt.Println(line)
}
