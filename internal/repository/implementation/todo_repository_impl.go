package implementation

import (
	"context"
	"errors"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/mapper"
	"chambers-practice-be/internal/model"
	"chambers-practice-be/internal/repository/contract"
	"chambers-practice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TodoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TodoMapper
}

func NewTodoRepository(db *gorm.DB) contract.TodoRepository {
	return &TodoRepositoryImpl{
		db:     db,
		mapper: mapper.NewTodoMapper(),
	}
}

func (r *TodoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entity.Todo) error {
	m := r.mapper.ToModel(todo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*todo = *r.mapper.ToEntity(m)
	return nil
}

func (r *TodoRepositoryImpl) CreateMany(ctx context.Context, todos []*entity.Todo) error {
	if len(todos) == 0 {
		return nil
	}
	models := r.mapper.ToModels(todos)
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *entity.Todo) error {
	m := r.mapper.ToModel(todo)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*todo = *r.mapper.ToEntity(m)
	return nil
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, ownerId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerId, id).
		Delete(&model.Todo{}).Error
}

func (r *TodoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Todo, error) {
	var m model.Todo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TodoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error) {
	var models []*model.Todo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
