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

func TestSubscriptionExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `subscriptions`").
		WithArgs(int64(7), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 7, 1)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `subscriptions`").
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByChannel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `subscriptions`").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

	count, err := repo.CountByChannel(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(45), count)
}

func TestListSubscribersPaginated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `subscriptions`").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT \\* FROM `subscriptions`").
		WithArgs(int64(7), 10).
		WillReturnRows(sqlmock.NewRows([]string{"subscription_id", "channel_id", "subscriber_id"}).
			AddRow(1001, 7, 1).
			AddRow(1002, 7, 2))

	subs, total, err := repo.ListSubscribers(context.Background(), 7, pagination.Params{}.Normalize())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, subs, 2)
	assert.Equal(t, int64(1), subs[0].SubscriberId)
}
