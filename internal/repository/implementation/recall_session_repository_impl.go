package implementation

import (
	"context"
	"errors"

	"active-recall-be/internal/entity"
	"active-recall-be/internal/mapper"
	"active-recall-be/internal/model"
	"active-recall-be/internal/repository/contract"
	"active-recall-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecallSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecallSessionMapper
}

func NewRecallSessionRepository(db *gorm.DB) contract.RecallSessionRepository {
	return &RecallSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecallSessionMapper(),
	}
}

func (r *RecallSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecallSessionRepositoryImpl) Create(ctx context.Context, session *entity.RecallSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecallSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecallSession, error) {
	var m model.RecallSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecallSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecallSession, error) {
	var models []*model.RecallSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecallSessionRepositoryImpl) DeleteBySectionIds(ctx context.Context, sectionIds []uuid.UUID) error {
	if len(sectionIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("section_id IN ?", sectionIds).Delete(&model.RecallSession{}).Error
}

func (r *RecallSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RecallSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
