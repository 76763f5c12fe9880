package main

import (
	"fmt"

	"planner/internal/app"
	"planner/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTaskCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskListCmd(a),
		newTaskCreateCmd(a),
		newTaskCompleteCmd(a),
		newTaskDeleteCmd(a),
	)
	return cmd
}

func newTaskListCmd(a *app.App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks you created or are assigned to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			var tasks []model.Task
			if projectID != "" {
				pid, err := uuid.Parse(projectID)
				if err != nil {
					return fmt.Errorf("invalid project id: %w", err)
				}
				tasks, err = a.Tasks.ListByProject(cmd.Context(), pid)
				if err != nil {
					return err
				}
			} else {
				tasks, err = a.Tasks.ListForUser(cmd.Context(), user.ID)
				if err != nil {
					return err
				}
			}

			for _, t := range tasks {
				fmt.Printf("%s  %-24s %-12s due %s\n",
					t.ID, t.Title, strOr(t.Status, model.TaskStatusNotStarted), strOr(t.DueDate, "-"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "only tasks of this project")
	return cmd
}

func newTaskCreateCmd(a *app.App) *cobra.Command {
	var description, projectID, assignedTo, status, priority, dueDate string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			input := model.TaskInput{
				Title:       args[0],
				CreatedBy:   user.ID.String(),
				Description: optional(description),
				ProjectID:   optional(projectID),
				AssignedTo:  optional(assignedTo),
				Status:      optional(status),
				Priority:    optional(priority),
				DueDate:     optional(dueDate),
			}
			task, err := a.Tasks.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s\n", task.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringVar(&projectID, "project", "", "parent project id")
	cmd.Flags().StringVar(&assignedTo, "assign", "", "assignee user id")
	cmd.Flags().StringVar(&status, "status", model.TaskStatusNotStarted, "task status")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high)")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date, YYYY-MM-DD")
	return cmd
}

func newTaskCompleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			task, err := a.Tasks.Complete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", task.ID)
			return nil
		},
	}
}

func newTaskDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			if err := a.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}
