package contract

import (
	"context"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecallSessionRepository interface {
	Create(ctx context.Context, session *entity.RecallSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecallSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecallSession, error)
	DeleteBySectionIds(ctx context.Context, sectionIds []uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
