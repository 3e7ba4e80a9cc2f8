package service

import (
	"context"
	"io"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/owned"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UpdateParams 视频可更新的文本字段 空字段保持原值
type UpdateParams struct {
	Title       string
	Description string
}

// Update edits title/description and optionally replaces the cover.
// The new cover is uploaded before the ownership check runs, so on a
// denied or failed update the fresh object is removed again.
func (s *VideoService) Update(ctx context.Context, videoId, userId int64, params UpdateParams,
	cover io.Reader, coverSize int64) (*model.Video, error) {

	if err := utils.CheckId(videoId); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" && strings.TrimSpace(params.Description) == "" && cover == nil {
		return nil, errno.EmptyContentErr
	}

	var newCoverUrl, newCoverKey string
	if cover != nil {
		var err error
		newCoverUrl, newCoverKey, err = s.storage.UploadCover(ctx, cover, coverSize)
		if err != nil {
			hlog.CtxErrorf(ctx, "upload cover failed: %v", err)
			return nil, errno.OssErr
		}
	}

	var oldCoverKey string
	video, err := owned.Update[*model.Video](ctx, s.videos, videoId, userId, func(v *model.Video) {
		if strings.TrimSpace(params.Title) != "" {
			v.Title = params.Title
		}
		if strings.TrimSpace(params.Description) != "" {
			v.Description = params.Description
		}
		if newCoverKey != "" {
			oldCoverKey = v.CoverKey
			v.CoverUrl = newCoverUrl
			v.CoverKey = newCoverKey
		}
	})
	if err != nil {
		if newCoverKey != "" {
			if rmErr := s.storage.RemoveCover(ctx, newCoverKey); rmErr != nil {
				hlog.CtxWarnf(ctx, "rollback cover object failed: %v", rmErr)
			}
		}
		return nil, err
	}

	if oldCoverKey != "" {
		if err := s.storage.RemoveCover(ctx, oldCoverKey); err != nil {
			hlog.CtxWarnf(ctx, "remove stale cover object failed: %v", err)
		}
	}
	return video, nil
}
