package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestLikeRelationExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepo(db)
	rel := repo.Relation("video")

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WithArgs("video", int64(100), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := rel.Exists(context.Background(), 100, 1)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRelationExistsAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	rel := NewLikeRepo(db).Relation("comment")

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WithArgs("comment", int64(200), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := rel.Exists(context.Background(), 200, 1)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeRelationDelete(t *testing.T) {
	db, mock := newMockDB(t)
	rel := NewLikeRepo(db).Relation("video")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes`").
		WithArgs("video", int64(100), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := rel.Delete(context.Background(), 100, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountVideoLikes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WithArgs("video", int64(10), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))

	count, err := repo.CountVideoLikes(context.Background(), []int64{10, 11})
	assert.NoError(t, err)
	assert.Equal(t, int64(14), count)
}

func TestCountVideoLikesEmptySet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepo(db)

	// 空集合直接返回0 不应触发任何SQL
	count, err := repo.CountVideoLikes(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
