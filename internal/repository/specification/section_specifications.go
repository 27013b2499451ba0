package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParentID filters sections by parent. A nil ParentID selects top-level
// sections (parent_id IS NULL), which GORM's equality Where would not do.
type ByParentID struct {
	ParentID *uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", *s.ParentID)
}

// BySectionIDs filters questions or recall sessions by owning section
type BySectionIDs struct {
	SectionIDs []uuid.UUID
}

func (s BySectionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id IN ?", s.SectionIDs)
}

// SiblingOrder orders sections the way the UI renders them: display_order
// ascending, latest update first as tiebreak.
type SiblingOrder struct{}

func (s SiblingOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("updated_at DESC")
}

// FlatOrder lists every section with top-level ones first (NULL parents sort
// ahead), then sibling ordering.
type FlatOrder struct{}

func (s FlatOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("parent_id IS NOT NULL").Order("display_order ASC").Order("updated_at DESC")
}
