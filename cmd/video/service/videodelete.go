package service

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/owned"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Delete removes the video record and releases its media objects.
// The record goes first; a failed object removal leaves an orphan in
// the store, which is cheaper to reconcile than a dangling record.
func (s *VideoService) Delete(ctx context.Context, videoId, userId int64) error {
	if err := utils.CheckId(videoId); err != nil {
		return err
	}

	video, err := s.videos.Load(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.RecordNotExistErr
		}
		return errors.WithMessage(err, "dao.VideoDelete failed")
	}
	if err := owned.Check(video, userId); err != nil {
		return err
	}

	if err := s.videos.Delete(ctx, videoId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}

	if err := s.storage.RemoveVideo(ctx, video.VideoKey); err != nil {
		hlog.CtxErrorf(ctx, "remove video object failed: %v", err)
	}
	if err := s.storage.RemoveCover(ctx, video.CoverKey); err != nil {
		hlog.CtxErrorf(ctx, "remove cover object failed: %v", err)
	}

	s.invalidateStats(ctx, video.UserId)
	return nil
}
