package model

import (
	"time"

	"github.com/google/uuid"
)

// Section is a subject/category tag. Questions and groups reference
// sections by name, not by id — a legacy of the original data set that
// the API tolerates rather than fixes (renames are rejected instead).
type Section struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSectionRequest is the payload for creating a section.
type CreateSectionRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
