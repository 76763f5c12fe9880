package model

import "github.com/google/uuid"

// Project rows are owned by a single user. Temporal columns are kept as the
// backend's wire strings: due_date may be a bare date or a full timestamp
// depending on which client wrote it, so parsing happens at the point of use.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	Color       *string   `json:"color"`
	DueDate     *string   `json:"due_date"`
	CompletedAt *string   `json:"completed_at"`
	CreatedAt   *string   `json:"created_at"`
	UpdatedAt   *string   `json:"updated_at"`
}

type ProjectInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	OwnerID     string  `json:"owner_id" validate:"required,uuid"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Color       *string `json:"color"`
	DueDate     *string `json:"due_date"`
}

// ProjectPatch carries only the columns to change; absent fields are left
// untouched by the backend.
type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Color       *string `json:"color,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}
