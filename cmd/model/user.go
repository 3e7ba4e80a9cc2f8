package model

import "time"

// User 账户实体 本服务只引用 不修改
type User struct {
	UserId    int64     `gorm:"primaryKey" json:"user_id"`
	UserName  string    `gorm:"not null;size:64" json:"user_name"`
	AvatarUrl string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
