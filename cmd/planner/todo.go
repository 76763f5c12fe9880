package main

import (
	"fmt"

	"planner/internal/app"
	"planner/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// The standalone todos table, kept alongside the merged view the `todos`
// command shows.
func newTodoCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage standalone todo items",
	}
	cmd.AddCommand(
		newTodoListCmd(a),
		newTodoAddCmd(a),
		newTodoRenameCmd(a),
		newTodoToggleCmd(a),
		newTodoRmCmd(a),
	)
	return cmd
}

func newTodoListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your todo items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			todos, err := a.Todos.ListByUser(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			for _, todo := range todos {
				mark := " "
				if todo.IsCompleted {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %s\n", mark, todo.ID, todo.Title)
			}
			return nil
		},
	}
}

func newTodoAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			todo, err := a.Todos.Create(cmd.Context(), model.TodoInput{
				UserID: user.ID.String(),
				Title:  args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added todo %s\n", todo.ID)
			return nil
		},
	}
}

func newTodoRenameCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Change a todo item's title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid todo id: %w", err)
			}

			title := args[1]
			if _, err := a.Todos.Update(cmd.Context(), id, model.TodoPatch{Title: &title}); err != nil {
				return err
			}
			fmt.Println("Renamed")
			return nil
		},
	}
}

func newTodoToggleCmd(a *app.App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Complete a todo item (or un-complete with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid todo id: %w", err)
			}

			todo, err := a.Todos.Toggle(cmd.Context(), id, !undo)
			if err != nil {
				return err
			}
			if todo.IsCompleted {
				fmt.Println("Done")
			} else {
				fmt.Println("Back to pending")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the item not completed")
	return cmd
}

func newTodoRmCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(a); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid todo id: %w", err)
			}
			if err := a.Todos.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}
