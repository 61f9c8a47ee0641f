package implementation

import (
	"context"
	"errors"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/mapper"
	"chambers-practice-be/internal/model"
	"chambers-practice-be/internal/repository/contract"
	"chambers-practice-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DirectoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryItemMapper
}

func NewDirectoryRepository(db *gorm.DB) contract.DirectoryRepository {
	return &DirectoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryItemMapper(),
	}
}

func (r *DirectoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DirectoryRepositoryImpl) Create(ctx context.Context, item *entity.DirectoryItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *DirectoryRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(&model.DirectoryItem{}).Error
}

func (r *DirectoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DirectoryItem, error) {
	var m model.DirectoryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DirectoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DirectoryItem, error) {
	var models []*model.DirectoryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
