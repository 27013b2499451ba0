package contract

import (
	"context"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	DeleteBySectionIds(ctx context.Context, sectionIds []uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
