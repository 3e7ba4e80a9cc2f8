package model

import "time"

// Subscription 订阅关系记录 channel与subscriber均为用户
// (channel_id, subscriber_id) 唯一索引保证同一对至多一条记录
type Subscription struct {
	SubscriptionId int64     `gorm:"primaryKey" json:"subscription_id"`
	ChannelId      int64     `gorm:"not null;uniqueIndex:uk_channel_subscriber;index" json:"channel_id"`
	SubscriberId   int64     `gorm:"not null;uniqueIndex:uk_channel_subscriber;index" json:"subscriber_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
