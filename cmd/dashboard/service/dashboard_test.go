package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

type fakeVideoStore struct {
	count  int64
	visits int64
	ids    []int64
	videos []*model.Video
}

func (f *fakeVideoStore) CountByUser(ctx context.Context, userId int64) (int64, error) {
	return f.count, nil
}

func (f *fakeVideoStore) SumVisitsByUser(ctx context.Context, userId int64) (int64, error) {
	return f.visits, nil
}

func (f *fakeVideoStore) ListIdsByUser(ctx context.Context, userId int64) ([]int64, error) {
	return f.ids, nil
}

func (f *fakeVideoStore) List(ctx context.Context, filter videodb.ListFilter, p pagination.Params) ([]*model.Video, int64, error) {
	return f.videos, int64(len(f.videos)), nil
}

type fakeSubscriptionStore struct {
	count int64
}

func (f *fakeSubscriptionStore) CountByChannel(ctx context.Context, channelId int64) (int64, error) {
	return f.count, nil
}

type fakeLikeStore struct {
	likesByVideo map[int64]int64
}

func (f *fakeLikeStore) CountVideoLikes(ctx context.Context, videoIds []int64) (int64, error) {
	var total int64
	for _, id := range videoIds {
		total += f.likesByVideo[id]
	}
	return total, nil
}

func TestGetChannelStats(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardService(
		&fakeVideoStore{count: 3, visits: 1200, ids: []int64{10, 11, 12}},
		&fakeSubscriptionStore{count: 45},
		&fakeLikeStore{likesByVideo: map[int64]int64{10: 5, 11: 0, 12: 9}},
		nil,
	)

	stats, err := svc.GetChannelStats(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVideos)
	assert.Equal(t, int64(1200), stats.TotalViews)
	assert.Equal(t, int64(45), stats.TotalSubscribers)
	assert.Equal(t, int64(14), stats.TotalLikes)
}

func TestGetChannelStatsEmptyChannel(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardService(
		&fakeVideoStore{},
		&fakeSubscriptionStore{},
		&fakeLikeStore{},
		nil,
	)

	// 没有任何内容的频道 四项都是0 不是错误
	stats, err := svc.GetChannelStats(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalSubscribers)
	assert.Equal(t, int64(0), stats.TotalLikes)
}

func TestGetChannelStatsInvalidId(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardService(&fakeVideoStore{}, &fakeSubscriptionStore{}, &fakeLikeStore{}, nil)

	_, err := svc.GetChannelStats(ctx, 0)
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = svc.GetChannelStats(ctx, -5)
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}

func TestGetChannelVideos(t *testing.T) {
	ctx := context.Background()
	videos := []*model.Video{
		{VideoId: 10, UserId: 7, Title: "first"},
		{VideoId: 11, UserId: 7, Title: "second"},
	}
	svc := NewDashboardService(&fakeVideoStore{videos: videos}, &fakeSubscriptionStore{}, &fakeLikeStore{}, nil)

	got, total, err := svc.GetChannelVideos(ctx, 7, pagination.Params{}.Normalize())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}
