package model

import "time"

// Video 视频实体 UserId为所属频道 创建后不可变更
// VideoKey/CoverKey 保存对象存储的key 删除时不再从url反推
type Video struct {
	VideoId     int64     `gorm:"primaryKey" json:"video_id"`
	UserId      int64     `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	VideoUrl    string    `gorm:"size:255" json:"video_url"`
	VideoKey    string    `gorm:"size:255" json:"-"`
	CoverUrl    string    `gorm:"size:255" json:"cover_url"`
	CoverKey    string    `gorm:"size:255" json:"-"`
	Duration    float64   `json:"duration"`
	VisitCount  int64     `gorm:"default:0" json:"visit_count"`
	Published   bool      `gorm:"default:false" json:"published"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// Owner 返回视频所属频道 用于所有权校验
func (v *Video) Owner() int64 {
	return v.UserId
}
