package model

import (
	"time"

	"VidTube.com/pkg/constants"
)

// Like 点赞关系记录 记录存在即为已点赞
// (target_type, target_id, user_id) 的唯一索引保证同一对至多一条记录
// 并发下的重复插入由该约束兜底
type Like struct {
	LikeId     int64     `gorm:"primaryKey" json:"like_id"`
	TargetType string    `gorm:"not null;size:16;uniqueIndex:uk_like_target" json:"target_type"`
	TargetId   int64     `gorm:"not null;uniqueIndex:uk_like_target" json:"target_id"`
	UserId     int64     `gorm:"not null;uniqueIndex:uk_like_target;index" json:"user_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Like) TableName() string {
	return "likes"
}

// IsValidTarget 校验点赞目标类型
func IsValidTarget(kind string) bool {
	switch kind {
	case constants.TargetVideo, constants.TargetComment, constants.TargetTweet:
		return true
	}
	return false
}
