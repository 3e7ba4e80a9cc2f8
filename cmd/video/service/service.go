package service

import (
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/oss"
)

// VideoService 视频业务 进程内构造一次 依赖显式注入
type VideoService struct {
	videos     *db.VideoRepo
	storage    *oss.Storage
	statsCache *cache.StatsCacheManager
}

func NewVideoService(videos *db.VideoRepo, storage *oss.Storage, statsCache *cache.StatsCacheManager) *VideoService {
	return &VideoService{
		videos:     videos,
		storage:    storage,
		statsCache: statsCache,
	}
}
