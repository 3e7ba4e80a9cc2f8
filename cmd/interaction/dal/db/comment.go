package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/pagination"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// 获取某一条评论的全部信息
func (r *CommentRepo) Load(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepo) Save(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *CommentRepo) Delete(ctx context.Context, commentId int64) error {
	if err := r.db.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// ListByVideo 获取视频的评论列表 最新的在前
func (r *CommentRepo) ListByVideo(ctx context.Context, videoId int64, p pagination.Params) ([]*model.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at DESC")
	return pagination.List[*model.Comment](query, p)
}
