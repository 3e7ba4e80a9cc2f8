package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/pagination"
	"gorm.io/gorm"
)

// 允许的排序字段 防止拼接任意列名
var sortColumns = map[string]string{
	"created_at":  "created_at",
	"visit_count": "visit_count",
	"duration":    "duration",
}

// ListFilter 视频列表过滤条件
type ListFilter struct {
	Keyword   string // title的子串匹配 大小写不敏感
	UserId    int64  // 0表示不过滤
	SortBy    string
	SortOrder string
}

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *VideoRepo) Load(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (r *VideoRepo) Save(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *VideoRepo) Delete(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return err
	}
	return nil
}

// List 按过滤条件分页查询视频 默认按创建时间倒序
// utf8mb4的默认collation对LIKE大小写不敏感
func (r *VideoRepo) List(ctx context.Context, filter ListFilter, p pagination.Params) ([]*model.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Video{})
	if filter.Keyword != "" {
		query = query.Where("title like ?", "%"+filter.Keyword+"%")
	}
	if filter.UserId > 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction)

	return pagination.List[*model.Video](query, p)
}

// GetByIds 批量查询视频
func (r *VideoRepo) GetByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// CountByUser 获取频道发布的视频数
func (r *VideoRepo) CountByUser(ctx context.Context, userId int64) (count int64, err error) {
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumVisitsByUser 获取频道所有视频的播放量之和 无视频时为0
func (r *VideoRepo) SumVisitsByUser(ctx context.Context, userId int64) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("COALESCE(SUM(visit_count), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListIdsByUser 获取频道发布的全部视频ID
func (r *VideoRepo) ListIdsByUser(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
