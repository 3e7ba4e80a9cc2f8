package db

import (
	"context"

	"VidTube.com/cmd/model"
	"gorm.io/gorm"
)

type TweetRepo struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) *TweetRepo {
	return &TweetRepo{db: db}
}

func (r *TweetRepo) Create(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *TweetRepo) Load(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := r.db.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (r *TweetRepo) Save(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Save(tweet).Error
}

func (r *TweetRepo) Delete(ctx context.Context, tweetId int64) error {
	if err := r.db.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return err
	}
	return nil
}

// ListByUser 获取用户发布的全部动态 最新的在前
func (r *TweetRepo) ListByUser(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}
