package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
)

// SubscriptionRepo 订阅关系存储 直接作为toggle.Relation使用
// targetId为频道 actorId为订阅者
type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

func (r *SubscriptionRepo) Exists(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SubscriptionRepo) Create(ctx context.Context, channelId, subscriberId int64) error {
	return r.db.WithContext(ctx).Create(&model.Subscription{
		SubscriptionId: utils.GenerateId(),
		ChannelId:      channelId,
		SubscriberId:   subscriberId,
	}).Error
}

func (r *SubscriptionRepo) Delete(ctx context.Context, channelId, subscriberId int64) error {
	return r.db.WithContext(ctx).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).
		Delete(&model.Subscription{}).Error
}

// CountByChannel 获取频道的订阅者数量
func (r *SubscriptionRepo) CountByChannel(ctx context.Context, channelId int64) (count int64, err error) {
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListSubscribers 获取订阅该频道的用户列表
func (r *SubscriptionRepo) ListSubscribers(ctx context.Context, channelId int64, p pagination.Params) ([]*model.Subscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at DESC")
	return pagination.List[*model.Subscription](query, p)
}

// ListChannels 获取用户订阅的频道列表
func (r *SubscriptionRepo) ListChannels(ctx context.Context, subscriberId int64, p pagination.Params) ([]*model.Subscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC")
	return pagination.List[*model.Subscription](query, p)
}
