package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// Relation 将点赞表绑定到某一目标类型 交给toggle引擎使用
func (r *LikeRepo) Relation(targetType string) toggle.Relation {
	return &likeRelation{repo: r, targetType: targetType}
}

type likeRelation struct {
	repo       *LikeRepo
	targetType string
}

func (l *likeRelation) Exists(ctx context.Context, targetId, userId int64) (bool, error) {
	var count int64
	err := l.repo.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ? And user_id = ?", l.targetType, targetId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *likeRelation) Create(ctx context.Context, targetId, userId int64) error {
	return l.repo.db.WithContext(ctx).Create(&model.Like{
		LikeId:     utils.GenerateId(),
		TargetType: l.targetType,
		TargetId:   targetId,
		UserId:     userId,
	}).Error
}

func (l *likeRelation) Delete(ctx context.Context, targetId, userId int64) error {
	return l.repo.db.WithContext(ctx).
		Where("target_type = ? And target_id = ? And user_id = ?", l.targetType, targetId, userId).
		Delete(&model.Like{}).Error
}

// CountForTarget 获得某一目标的点赞数
func (r *LikeRepo) CountForTarget(ctx context.Context, targetType string, targetId int64) (count int64, err error) {
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ?", targetType, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountVideoLikes 统计一组视频收到的点赞总数 空集合直接返回0 不触发查询
func (r *LikeRepo) CountVideoLikes(ctx context.Context, videoIds []int64) (int64, error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id IN (?)", constants.TargetVideo, videoIds).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListVideoLikesByUser 获取用户点赞过的视频 最新的在前
func (r *LikeRepo) ListVideoLikesByUser(ctx context.Context, userId int64, p pagination.Params) ([]*model.Like, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And user_id = ?", constants.TargetVideo, userId).
		Order("created_at DESC")
	return pagination.List[*model.Like](query, p)
}
