package main

import (
	"fmt"

	"planner/internal/app"
	"planner/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectListCmd(a),
		newProjectCreateCmd(a),
		newProjectUpdateCmd(a),
		newProjectDeleteCmd(a),
	)
	return cmd
}

func newProjectListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			projects, err := a.Projects.ListByOwner(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			for _, p := range projects {
				fmt.Printf("%s  %-24s %-12s due %s\n",
					p.ID, p.Name, strOr(p.Status, model.ProjectStatusNotStarted), strOr(p.DueDate, "-"))
			}
			return nil
		},
	}
}

func newProjectCreateCmd(a *app.App) *cobra.Command {
	var description, status, priority, color, dueDate string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			input := model.ProjectInput{
				Name:        args[0],
				OwnerID:     user.ID.String(),
				Description: optional(description),
				Status:      optional(status),
				Priority:    optional(priority),
				Color:       optional(color),
				DueDate:     optional(dueDate),
			}
			project, err := a.Projects.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s\n", project.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&status, "status", model.ProjectStatusOnGoing, "project status")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high)")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date, YYYY-MM-DD")
	return cmd
}

func newProjectUpdateCmd(a *app.App) *cobra.Command {
	var name, description, status, priority, dueDate string
	var complete bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Patch a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id: %w", err)
			}

			patch := model.ProjectPatch{
				Name:        optional(name),
				Description: optional(description),
				Status:      optional(status),
				Priority:    optional(priority),
				DueDate:     optional(dueDate),
			}
			if complete {
				completed := model.ProjectStatusCompleted
				now := nowStamp()
				patch.Status = &completed
				patch.CompletedAt = &now
			}

			project, err := a.Projects.Update(cmd.Context(), id, user.ID, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", project.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")
	cmd.Flags().StringVar(&dueDate, "due", "", "new due date")
	cmd.Flags().BoolVar(&complete, "complete", false, "mark completed now")
	return cmd
}

func newProjectDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id: %w", err)
			}
			if err := a.Projects.Delete(cmd.Context(), id, user.ID); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}
