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

type NoteSectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteSectionMapper
}

func NewNoteSectionRepository(db *gorm.DB) contract.NoteSectionRepository {
	return &NoteSectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteSectionMapper(),
	}
}

func (r *NoteSectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteSectionRepositoryImpl) Create(ctx context.Context, section *entity.NoteSection) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteSectionRepositoryImpl) Update(ctx context.Context, section *entity.NoteSection) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteSectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NoteSection{}, id).Error
}

func (r *NoteSectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteSection, error) {
	var m model.NoteSection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteSectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteSection, error) {
	var models []*model.NoteSection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteSectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteSection{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
