package model

import "time"

// Comment 评论实体 UserId为作者 仅Content可被作者修改
type Comment struct {
	CommentId int64     `gorm:"primaryKey" json:"comment_id"`
	VideoId   int64     `gorm:"not null;index" json:"video_id"`
	UserId    int64     `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Owner 返回评论作者 用于所有权校验
func (c *Comment) Owner() int64 {
	return c.UserId
}
