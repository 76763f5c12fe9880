package model

import "github.com/google/uuid"

type Todo struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CompletedAt *string   `json:"completed_at"`
	CreatedAt   *string   `json:"created_at"`
}

type TodoInput struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Title  string `json:"title" validate:"required"`
}

type TodoPatch struct {
	Title *string `json:"title,omitempty"`
}

// TodoToggle always serializes completed_at, including an explicit null when
// un-completing, so the column is cleared rather than left stale.
type TodoToggle struct {
	IsCompleted bool    `json:"is_completed"`
	CompletedAt *string `json:"completed_at"`
}
