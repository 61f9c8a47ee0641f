package service

import (
	"fmt"
	"testing"

	"chambers-practice-be/internal/model"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestFactory spins up an in-memory sqlite store with the full schema.
// Each test gets its own uniquely named database; cache=shared keeps it
// visible across gorm's pooled connections.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.AttendanceNote{},
		&model.AttendanceExpense{},
		&model.DirectoryItem{},
		&model.Todo{},
		&model.Transcript{},
		&model.Case{},
	))

	return unitofwork.NewRepositoryFactory(db)
}
