package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a class/cohort of students. Subjects holds section names
// (denormalized, selected via a multi-select in the console).
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subjects  []string  `json:"subjects"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateGroupRequest is the payload for creating a group.
type CreateGroupRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Subjects []string `json:"subjects" binding:"omitempty,dive,min=1,max=100"`
}

// UpdateGroupRequest is the payload for renaming a group or changing its
// subject set.
type UpdateGroupRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Subjects []string `json:"subjects" binding:"omitempty,dive,min=1,max=100"`
}
