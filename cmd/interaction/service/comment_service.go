package service

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/owned"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentService struct {
	comments *db.CommentRepo
	videos   *videodb.VideoRepo
}

func NewCommentService(comments *db.CommentRepo, videos *videodb.VideoRepo) *CommentService {
	return &CommentService{
		comments: comments,
		videos:   videos,
	}
}

// CreateComment 在视频下新增评论 视频必须存在
func (s *CommentService) CreateComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if err := utils.CheckId(videoId); err != nil {
		return nil, err
	}
	if err := owned.CheckContent(content); err != nil {
		return nil, err
	}
	if _, err := s.videos.Load(ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotExistErr
		}
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}

	comment := &model.Comment{
		CommentId: utils.GenerateId(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return comment, nil
}

// ListComments 获取视频的评论列表
func (s *CommentService) ListComments(ctx context.Context, videoId int64, p pagination.Params) ([]*model.Comment, int64, error) {
	if err := utils.CheckId(videoId); err != nil {
		return nil, 0, err
	}
	return s.comments.ListByVideo(ctx, videoId, p)
}

// UpdateComment 仅作者可修改评论内容
func (s *CommentService) UpdateComment(ctx context.Context, commentId, userId int64, content string) (*model.Comment, error) {
	if err := utils.CheckId(commentId); err != nil {
		return nil, err
	}
	if err := owned.CheckContent(content); err != nil {
		return nil, err
	}
	return owned.Update[*model.Comment](ctx, s.comments, commentId, userId, func(c *model.Comment) {
		c.Content = content
	})
}

// DeleteComment 仅作者可删除评论
func (s *CommentService) DeleteComment(ctx context.Context, commentId, userId int64) error {
	if err := utils.CheckId(commentId); err != nil {
		return err
	}
	return owned.Delete[*model.Comment](ctx, s.comments, commentId, userId)
}
