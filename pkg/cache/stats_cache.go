package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"VidTube.com/config"
	"github.com/redis/go-redis/v9"
)

// 缓存键名常量
const (
	// 频道统计缓存键
	ChannelStatsKey = "channel:stats:%d"
)

// NewRedisClient 创建redis客户端
func NewRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
}

// StatsCacheManager 频道统计缓存管理器
// 四项统计各自独立计算 允许短暂不一致 所以用带TTL的cache-aside即可
type StatsCacheManager struct {
	client      *redis.Client
	statsExpire time.Duration
}

func NewStatsCacheManager(client *redis.Client) *StatsCacheManager {
	return &StatsCacheManager{
		client:      client,
		statsExpire: 5 * time.Minute,
	}
}

// GetChannelStats 读取缓存的频道统计 未命中返回false
func (scm *StatsCacheManager) GetChannelStats(ctx context.Context, channelId int64, dest interface{}) (bool, error) {
	key := fmt.Sprintf(ChannelStatsKey, channelId)

	data, err := scm.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // 缓存未命中
		}
		return false, fmt.Errorf("failed to get cached channel stats: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal channel stats: %w", err)
	}
	return true, nil
}

// CacheChannelStats 缓存频道统计
func (scm *StatsCacheManager) CacheChannelStats(ctx context.Context, channelId int64, stats interface{}) error {
	key := fmt.Sprintf(ChannelStatsKey, channelId)

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal channel stats: %w", err)
	}
	return scm.client.Set(ctx, key, data, scm.statsExpire).Err()
}

// DeleteChannelStats 失效频道统计缓存
func (scm *StatsCacheManager) DeleteChannelStats(ctx context.Context, channelId int64) error {
	key := fmt.Sprintf(ChannelStatsKey, channelId)
	return scm.client.Del(ctx, key).Err()
}
