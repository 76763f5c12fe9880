package model

import "github.com/google/uuid"

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ProjectID   *uuid.UUID `json:"project_id"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *string    `json:"due_date"`
	CompletedAt *string    `json:"completed_at"`
	CreatedAt   *string    `json:"created_at"`
	UpdatedAt   *string    `json:"updated_at"`
}

type TaskInput struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	ProjectID   *string `json:"project_id" validate:"omitempty,uuid"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,uuid"`
	CreatedBy   string  `json:"created_by" validate:"required,uuid"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}
