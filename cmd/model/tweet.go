package model

import "time"

// Tweet 动态实体 与Comment一致 仅Content可被作者修改
type Tweet struct {
	TweetId   int64     `gorm:"primaryKey" json:"tweet_id"`
	UserId    int64     `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (t *Tweet) Owner() int64 {
	return t.UserId
}
