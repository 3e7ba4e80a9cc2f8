package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/owned"
	"VidTube.com/pkg/utils"
)

// TogglePublish 翻转视频的发布状态 仅限所有者
func (s *VideoService) TogglePublish(ctx context.Context, videoId, userId int64) (*model.Video, error) {
	if err := utils.CheckId(videoId); err != nil {
		return nil, err
	}
	return owned.Update[*model.Video](ctx, s.videos, videoId, userId, func(v *model.Video) {
		v.Published = !v.Published
	})
}
