package unitofwork

import (
	"context"
	"fmt"
	"testing"
	"time"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
	"chambers-practice-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestUnitOfWork(t *testing.T) UnitOfWork {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AttendanceNote{}, &model.AttendanceExpense{}))

	return NewRepositoryFactory(db).NewUnitOfWork(context.Background())
}

func newExpenseLine(ownerId uuid.UUID) *entity.ExpenseLine {
	return &entity.ExpenseLine{
		Id:               uuid.New(),
		OwnerId:          ownerId,
		AttendanceNoteId: uuid.New(),
		ExpenseType:      "Travel",
		Amount:           12.50,
		CreatedAt:        time.Now(),
	}
}

func TestRollbackDiscardsWrites(t *testing.T) {
	uow := newTestUnitOfWork(t)
	ctx := context.Background()
	ownerId := uuid.New()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ExpenseRepository().CreateMany(ctx, []*entity.ExpenseLine{newExpenseLine(ownerId)}))
	require.NoError(t, uow.Rollback())

	lines, err := uow.ExpenseRepository().FindAll(ctx, specification.OwnedBy{OwnerID: ownerId})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCommitPersistsWrites(t *testing.T) {
	uow := newTestUnitOfWork(t)
	ctx := context.Background()
	ownerId := uuid.New()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ExpenseRepository().CreateMany(ctx, []*entity.ExpenseLine{newExpenseLine(ownerId)}))
	require.NoError(t, uow.Commit())

	lines, err := uow.ExpenseRepository().FindAll(ctx, specification.OwnedBy{OwnerID: ownerId})
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestDoubleBeginFails(t *testing.T) {
	uow := newTestUnitOfWork(t)
	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback())

	assert.Error(t, uow.Commit(), "commit without an open transaction must fail")
}
