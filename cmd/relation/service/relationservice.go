package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type RelationService struct {
	subscriptions *db.SubscriptionRepo
	producer      *mq.Producer
}

func NewRelationService(subscriptions *db.SubscriptionRepo, producer *mq.Producer) *RelationService {
	return &RelationService{
		subscriptions: subscriptions,
		producer:      producer,
	}
}

// ToggleSubscription 翻转订阅关系 返回翻转后的状态
// 不允许订阅自己的频道
func (s *RelationService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	if err := utils.CheckId(channelId); err != nil {
		return false, err
	}
	if subscriberId == channelId {
		return false, errno.SelfSubscribeErr
	}

	active, err := toggle.Toggle(ctx, s.subscriptions, channelId, subscriberId)
	if err != nil {
		return false, err
	}

	s.publishEvent(ctx, channelId, subscriberId, active)
	return active, nil
}

// Subscribers 获取频道的订阅者列表
func (s *RelationService) Subscribers(ctx context.Context, channelId int64, p pagination.Params) ([]*model.Subscription, int64, error) {
	if err := utils.CheckId(channelId); err != nil {
		return nil, 0, err
	}
	return s.subscriptions.ListSubscribers(ctx, channelId, p)
}

// SubscribedChannels 获取用户订阅的频道列表
func (s *RelationService) SubscribedChannels(ctx context.Context, subscriberId int64, p pagination.Params) ([]*model.Subscription, int64, error) {
	if err := utils.CheckId(subscriberId); err != nil {
		return nil, 0, err
	}
	return s.subscriptions.ListChannels(ctx, subscriberId, p)
}

func (s *RelationService) publishEvent(ctx context.Context, channelId, subscriberId int64, active bool) {
	if s.producer == nil {
		return
	}
	event := &mq.SubscriptionEvent{
		ChannelID:    channelId,
		SubscriberID: subscriberId,
		Active:       active,
		Timestamp:    time.Now().Unix(),
		EventID:      uuid.New().String(),
	}
	if err := s.producer.PublishSubscriptionEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish subscription event failed: %v", err)
	}
}
