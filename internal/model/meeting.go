package model

import "github.com/google/uuid"

type Meeting struct {
	ID           uuid.UUID `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	CreatedBy    uuid.UUID `json:"created_by"`
	ScheduledFor *string   `json:"scheduled_for"`
	DurationMin  *int      `json:"duration_min"`
	MeetingURL   *string   `json:"meeting_url"`
	Status       *string   `json:"status"`
	CreatedAt    *string   `json:"created_at"`
	UpdatedAt    *string   `json:"updated_at"`
}

type MeetingInput struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	CreatedBy    string  `json:"created_by" validate:"required,uuid"`
	ScheduledFor *string `json:"scheduled_for"`
	DurationMin  *int    `json:"duration_min" validate:"omitempty,gte=0"`
	MeetingURL   string  `json:"meeting_url" validate:"required,meetingurl"`
	Status       *string `json:"status"`
}

// MeetingPatch deliberately has no id or created_by field; those columns are
// never writable after creation.
type MeetingPatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	ScheduledFor *string `json:"scheduled_for,omitempty"`
	DurationMin  *int    `json:"duration_min,omitempty"`
	MeetingURL   *string `json:"meeting_url,omitempty"`
	Status       *string `json:"status,omitempty"`
}
