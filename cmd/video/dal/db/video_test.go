package db

import (
	"context"
	"testing"

	"VidTube.com/pkg/pagination"
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

func TestSumVisitsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVideoRepo(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(visit_count\\), 0\\) FROM `videos`").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(visit_count), 0)"}).AddRow(1200))

	total, err := repo.SumVisitsByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1200), total)
}

func TestSumVisitsByUserNoVideos(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVideoRepo(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(visit_count\\), 0\\) FROM `videos`").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(visit_count), 0)"}).AddRow(0))

	total, err := repo.SumVisitsByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestListWithKeywordFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVideoRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `videos`").
		WithArgs("%golang%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `videos`").
		WithArgs("%golang%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"video_id", "user_id", "title"}).
			AddRow(10, 7, "golang tutorial"))

	videos, total, err := repo.List(context.Background(), ListFilter{Keyword: "golang"}, pagination.Params{}.Normalize())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, videos, 1)
	assert.Equal(t, "golang tutorial", videos[0].Title)
}

func TestGetByIdsEmptySet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVideoRepo(db)

	// 空集合直接返回 不应触发任何SQL
	videos, err := repo.GetByIds(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, videos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
