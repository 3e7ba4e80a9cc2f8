package mq

// LikeEvent 点赞切换事件
type LikeEvent struct {
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"` // video, comment, tweet
	TargetID   int64  `json:"target_id"`
	Active     bool   `json:"active"` // 切换后的状态
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}

// SubscriptionEvent 订阅切换事件
type SubscriptionEvent struct {
	ChannelID    int64  `json:"channel_id"`
	SubscriberID int64  `json:"subscriber_id"`
	Active       bool   `json:"active"`
	Timestamp    int64  `json:"timestamp"`
	EventID      string `json:"event_id"`
}

const (
	// 交换机名称
	LikeEventExchange         = "like_events"
	SubscriptionEventExchange = "subscription_events"

	// 队列名称
	LikeEventQueue         = "like_event_queue"
	SubscriptionEventQueue = "subscription_event_queue"
)
