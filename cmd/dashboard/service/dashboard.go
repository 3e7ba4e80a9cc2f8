package service

import (
	"context"

	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// ChannelStats 频道统计 四项各自独立计算 允许彼此间的短暂偏差
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

// VideoStore 统计所需的视频查询
type VideoStore interface {
	CountByUser(ctx context.Context, userId int64) (int64, error)
	SumVisitsByUser(ctx context.Context, userId int64) (int64, error)
	ListIdsByUser(ctx context.Context, userId int64) ([]int64, error)
	List(ctx context.Context, filter videodb.ListFilter, p pagination.Params) ([]*model.Video, int64, error)
}

// SubscriptionStore 统计所需的订阅查询
type SubscriptionStore interface {
	CountByChannel(ctx context.Context, channelId int64) (int64, error)
}

// LikeStore 统计所需的点赞查询
type LikeStore interface {
	CountVideoLikes(ctx context.Context, videoIds []int64) (int64, error)
}

type DashboardService struct {
	videos        VideoStore
	subscriptions SubscriptionStore
	likes         LikeStore
	statsCache    *cache.StatsCacheManager
}

func NewDashboardService(videos VideoStore, subscriptions SubscriptionStore, likes LikeStore,
	statsCache *cache.StatsCacheManager) *DashboardService {
	return &DashboardService{
		videos:        videos,
		subscriptions: subscriptions,
		likes:         likes,
		statsCache:    statsCache,
	}
}

// GetChannelStats computes the four channel figures. Each figure is an
// independent query; no transaction spans them. Results are cached with
// a short TTL, and cache failures degrade to plain database reads.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelId int64) (*ChannelStats, error) {
	if err := utils.CheckId(channelId); err != nil {
		return nil, err
	}

	if s.statsCache != nil {
		stats := &ChannelStats{}
		hit, err := s.statsCache.GetChannelStats(ctx, channelId, stats)
		if err != nil {
			hlog.CtxWarnf(ctx, "read channel stats cache failed: %v", err)
		} else if hit {
			return stats, nil
		}
	}

	totalVideos, err := s.videos.CountByUser(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dashboard: count videos failed")
	}

	totalViews, err := s.videos.SumVisitsByUser(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dashboard: sum views failed")
	}

	totalSubscribers, err := s.subscriptions.CountByChannel(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dashboard: count subscribers failed")
	}

	// 点赞总数需要先解析出频道的全部视频
	videoIds, err := s.videos.ListIdsByUser(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dashboard: list video ids failed")
	}
	totalLikes, err := s.likes.CountVideoLikes(ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(err, "dashboard: count likes failed")
	}

	stats := &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}
	if s.statsCache != nil {
		if err := s.statsCache.CacheChannelStats(ctx, channelId, stats); err != nil {
			hlog.CtxWarnf(ctx, "cache channel stats failed: %v", err)
		}
	}
	return stats, nil
}

// GetChannelVideos 获取频道发布的视频 分页 最新的在前
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelId int64, p pagination.Params) ([]*model.Video, int64, error) {
	if err := utils.CheckId(channelId); err != nil {
		return nil, 0, err
	}
	return s.videos.List(ctx, videodb.ListFilter{UserId: channelId}, p)
}
