package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteSection is a titled block of study notes. ParentId == nil means
// top-level; the hierarchy is capped at two levels, so a section whose
// parent is itself a subsection is never valid.
type NoteSection struct {
	Id           uuid.UUID
	ParentId     *uuid.UUID
	Title        string
	Content      string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSubsection reports whether the section sits under a parent.
func (s *NoteSection) IsSubsection() bool {
	return s.ParentId != nil
}
