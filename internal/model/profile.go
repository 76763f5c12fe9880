package model

import "github.com/google/uuid"

type Profile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}
