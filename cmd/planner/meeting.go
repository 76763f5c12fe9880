package main

import (
	"fmt"

	"planner/internal/app"
	"planner/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newMeetingCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Manage meetings",
	}
	cmd.AddCommand(
		newMeetingListCmd(a),
		newMeetingCreateCmd(a),
		newMeetingCancelCmd(a),
		newMeetingDeleteCmd(a),
	)
	return cmd
}

func newMeetingListCmd(a *app.App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			var meetings []model.Meeting
			if all {
				meetings, err = a.Meetings.List(cmd.Context())
			} else {
				meetings, err = a.Meetings.ListByCreator(cmd.Context(), user.ID)
			}
			if err != nil {
				return err
			}

			for _, m := range meetings {
				fmt.Printf("%s  %-24s %-10s at %s (%d min)\n",
					m.ID, strOr(m.Title, "(untitled)"), strOr(m.Status, model.MeetingStatusScheduled),
					strOr(m.ScheduledFor, "-"), durationOr(m.DurationMin, 60))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include meetings created by others")
	return cmd
}

func newMeetingCreateCmd(a *app.App) *cobra.Command {
	var description, url, scheduledFor string
	var duration int

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Schedule a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			input := model.MeetingInput{
				Title:        args[0],
				CreatedBy:    user.ID.String(),
				Description:  optional(description),
				MeetingURL:   url,
				ScheduledFor: optional(scheduledFor),
			}
			if duration > 0 {
				input.DurationMin = &duration
			}

			meeting, err := a.Meetings.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created meeting %s\n", meeting.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "meeting description")
	cmd.Flags().StringVar(&url, "url", "", "meeting URL (required)")
	cmd.Flags().StringVar(&scheduledFor, "at", "", "start time, RFC 3339")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes (default 60)")
	return cmd
}

func newMeetingCancelCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Mark a meeting canceled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid meeting id: %w", err)
			}

			canceled := model.MeetingStatusCanceled
			meeting, err := a.Meetings.Update(cmd.Context(), id, model.MeetingPatch{Status: &canceled})
			if err != nil {
				return err
			}
			fmt.Printf("Canceled meeting %s\n", meeting.ID)
			return nil
		},
	}
}

func newMeetingDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid meeting id: %w", err)
			}
			if err := a.Meetings.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}

func durationOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
