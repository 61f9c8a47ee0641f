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

type AttendanceNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AttendanceNoteMapper
}

func NewAttendanceNoteRepository(db *gorm.DB) contract.AttendanceNoteRepository {
	return &AttendanceNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewAttendanceNoteMapper(),
	}
}

func (r *AttendanceNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttendanceNoteRepositoryImpl) Create(ctx context.Context, note *entity.AttendanceNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *AttendanceNoteRepositoryImpl) Update(ctx context.Context, note *entity.AttendanceNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *AttendanceNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AttendanceNote, error) {
	var m model.AttendanceNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AttendanceNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AttendanceNote, error) {
	var models []*model.AttendanceNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AttendanceNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AttendanceNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
