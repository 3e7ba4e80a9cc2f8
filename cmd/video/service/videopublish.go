package service

import (
	"context"
	"io"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PublishParams 发布视频的文本字段 文件内容单独传入
type PublishParams struct {
	Title       string
	Description string
	Duration    float64
}

// Publish uploads the media to the object store, then persists the
// video record pointing at the returned locators. The object keys are
// stored next to the urls so deletion never has to parse a url.
func (s *VideoService) Publish(ctx context.Context, userId int64, params PublishParams,
	video io.Reader, videoSize int64, cover io.Reader, coverSize int64) (*model.Video, error) {

	if strings.TrimSpace(params.Title) == "" {
		return nil, errno.EmptyContentErr
	}
	if video == nil {
		return nil, errno.ParamErr.WithMessage("video file is required")
	}

	videoUrl, videoKey, err := s.storage.UploadVideo(ctx, video, videoSize)
	if err != nil {
		hlog.CtxErrorf(ctx, "upload video failed: %v", err)
		return nil, errno.OssErr
	}

	var coverUrl, coverKey string
	if cover != nil {
		coverUrl, coverKey, err = s.storage.UploadCover(ctx, cover, coverSize)
		if err != nil {
			hlog.CtxErrorf(ctx, "upload cover failed: %v", err)
			// 封面上传失败时回收已上传的视频对象
			if rmErr := s.storage.RemoveVideo(ctx, videoKey); rmErr != nil {
				hlog.CtxWarnf(ctx, "rollback video object failed: %v", rmErr)
			}
			return nil, errno.OssErr
		}
	}

	newVideo := &model.Video{
		VideoId:     utils.GenerateId(),
		UserId:      userId,
		Title:       params.Title,
		Description: params.Description,
		VideoUrl:    videoUrl,
		VideoKey:    videoKey,
		CoverUrl:    coverUrl,
		CoverKey:    coverKey,
		Duration:    params.Duration,
		Published:   true,
	}
	if err := s.videos.Create(ctx, newVideo); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	s.invalidateStats(ctx, userId)
	return newVideo, nil
}

func (s *VideoService) invalidateStats(ctx context.Context, channelId int64) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.DeleteChannelStats(ctx, channelId); err != nil {
		hlog.CtxWarnf(ctx, "invalidate channel stats failed: %v", err)
	}
}
