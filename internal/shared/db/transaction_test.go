package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type row struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(&row{}))
	return database
}

func count(t *testing.T, database *gorm.DB) int64 {
	var n int64
	require.NoError(t, database.Model(&row{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, database).Create(&row{Name: "a"}).Error
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, count(t, database))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		require.NoError(t, GetTxFromContext(ctx, database).Create(&row{Name: "a"}).Error)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 0, count(t, database))
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		outer := GetTxFromContext(ctx, database)
		return tm.RunInTransaction(ctx, func(inner context.Context) error {
			assert.Same(t, outer, GetTxFromContext(inner, database))
			return errors.New("inner failure")
		})
	})

	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	database := setupTestDB(t)
	for _, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, database.Create(&row{Name: n}).Error)
	}

	var rows []row
	require.NoError(t, database.Order("id").Scopes(Paginate(1, 2)).Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].Name)

	rows = nil
	require.NoError(t, database.Order("id").Scopes(Paginate(0, 0)).Find(&rows).Error)
	assert.Len(t, rows, 4)
}
