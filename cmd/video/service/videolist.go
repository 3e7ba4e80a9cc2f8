package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VideoList 分页查询视频 支持标题子串和频道过滤
func (s *VideoService) VideoList(ctx context.Context, filter db.ListFilter, p pagination.Params) ([]*model.Video, int64, error) {
	videos, count, err := s.videos.List(ctx, filter, p)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.VideoList failed")
	}
	return videos, count, nil
}

// VideoInfo 获取单个视频
func (s *VideoService) VideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	if err := utils.CheckId(videoId); err != nil {
		return nil, err
	}
	video, err := s.videos.Load(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotExistErr
		}
		return nil, errors.WithMessage(err, "dao.VideoInfo failed")
	}
	return video, nil
}
