package contract

import (
	"context"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteSectionRepository interface {
	Create(ctx context.Context, section *entity.NoteSection) error
	Update(ctx context.Context, section *entity.NoteSection) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteSection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteSection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
