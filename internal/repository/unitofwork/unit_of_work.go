package unitofwork

import (
	"context"

	"active-recall-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteSectionRepository() contract.NoteSectionRepository
	QuestionRepository() contract.QuestionRepository
	RecallSessionRepository() contract.RecallSessionRepository
}
