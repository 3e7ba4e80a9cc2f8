package service

import (
	"context"
	"time"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// LikeService 点赞业务 视频/评论/动态共用一套toggle逻辑
type LikeService struct {
	likes    *db.LikeRepo
	videos   *videodb.VideoRepo
	producer *mq.Producer
}

func NewLikeService(likes *db.LikeRepo, videos *videodb.VideoRepo, producer *mq.Producer) *LikeService {
	return &LikeService{
		likes:    likes,
		videos:   videos,
		producer: producer,
	}
}

// Toggle 翻转(target, user)的点赞记录 返回翻转后的状态
func (s *LikeService) Toggle(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	if !model.IsValidTarget(targetType) {
		return false, errno.ParamErr.WithMessage("invalid target type: " + targetType)
	}
	if err := utils.CheckId(targetId); err != nil {
		return false, err
	}

	active, err := toggle.Toggle(ctx, s.likes.Relation(targetType), targetId, userId)
	if err != nil {
		return false, err
	}

	s.publishEvent(ctx, userId, targetType, targetId, active)
	return active, nil
}

// LikedVideos 获取用户点赞过的视频列表
func (s *LikeService) LikedVideos(ctx context.Context, userId int64, p pagination.Params) ([]*model.Video, int64, error) {
	likes, total, err := s.likes.ListVideoLikesByUser(ctx, userId, p)
	if err != nil {
		return nil, 0, err
	}

	videoIds := make([]int64, 0, len(likes))
	for _, like := range likes {
		videoIds = append(videoIds, like.TargetId)
	}
	videos, err := s.videos.GetByIds(ctx, videoIds)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// 点赞事件只用于下游统计 发布失败不影响本次请求
func (s *LikeService) publishEvent(ctx context.Context, userId int64, targetType string, targetId int64, active bool) {
	if s.producer == nil {
		return
	}
	event := &mq.LikeEvent{
		UserID:     userId,
		TargetType: targetType,
		TargetID:   targetId,
		Active:     active,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := s.producer.PublishLikeEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish like event failed: %v", err)
	}
}
