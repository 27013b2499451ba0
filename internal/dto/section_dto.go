package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	Title    string     `json:"title" validate:"required"`
	Content  string     `json:"content"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type UpdateSectionRequest struct {
	Id           uuid.UUID  `json:"-"`
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	ParentId     *uuid.UUID `json:"parent_id"`
	DisplayOrder *int       `json:"display_order"`
}

// SectionTreeResponse is the nested view of a section and its children,
// children ordered by display_order.
type SectionTreeResponse struct {
	Id           uuid.UUID              `json:"id"`
	ParentId     *uuid.UUID             `json:"parent_id"`
	Title        string                 `json:"title"`
	Content      string                 `json:"content"`
	DisplayOrder int                    `json:"display_order"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Children     []*SectionTreeResponse `json:"children"`
}

// ExportSectionNode is the portable form of a section: no ids, so an import
// into another store reassigns them.
type ExportSectionNode struct {
	Title        string               `json:"title"`
	Content      string               `json:"content"`
	DisplayOrder int                  `json:"display_order"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
	Children     []*ExportSectionNode `json:"children"`
}

type ExportAllResponse struct {
	ExportedAt string               `json:"exported_at"`
	Sections   []*ExportSectionNode `json:"sections"`
}

type ExportSectionResponse struct {
	ExportedAt string             `json:"exported_at"`
	Section    *ExportSectionNode `json:"section"`
}

// ImportSectionNode mirrors ExportSectionNode on the way back in; timestamps
// from the source document are ignored and reassigned on creation.
type ImportSectionNode struct {
	Title        string               `json:"title" validate:"required"`
	Content      string               `json:"content"`
	DisplayOrder int                  `json:"display_order"`
	Children     []*ImportSectionNode `json:"children"`
}

type ImportSectionsRequest struct {
	Sections []*ImportSectionNode `json:"sections" validate:"required"`
}

type ImportSectionsResponse struct {
	ImportedCount int `json:"imported_count"`
}
