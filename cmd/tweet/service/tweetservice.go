package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/tweet/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/owned"
	"VidTube.com/pkg/utils"
)

type TweetService struct {
	tweets *db.TweetRepo
}

func NewTweetService(tweets *db.TweetRepo) *TweetService {
	return &TweetService{tweets: tweets}
}

// CreateTweet 发布动态
func (s *TweetService) CreateTweet(ctx context.Context, userId int64, content string) (*model.Tweet, error) {
	if err := owned.CheckContent(content); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{
		TweetId: utils.GenerateId(),
		UserId:  userId,
		Content: content,
	}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return tweet, nil
}

// UserTweets 获取用户发布的动态 最新的在前
func (s *TweetService) UserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	if err := utils.CheckId(userId); err != nil {
		return nil, err
	}
	return s.tweets.ListByUser(ctx, userId)
}

// UpdateTweet 仅作者可修改动态内容
func (s *TweetService) UpdateTweet(ctx context.Context, tweetId, userId int64, content string) (*model.Tweet, error) {
	if err := utils.CheckId(tweetId); err != nil {
		return nil, err
	}
	if err := owned.CheckContent(content); err != nil {
		return nil, err
	}
	return owned.Update[*model.Tweet](ctx, s.tweets, tweetId, userId, func(t *model.Tweet) {
		t.Content = content
	})
}

// DeleteTweet 仅作者可删除动态
func (s *TweetService) DeleteTweet(ctx context.Context, tweetId, userId int64) error {
	if err := utils.CheckId(tweetId); err != nil {
		return err
	}
	return owned.Delete[*model.Tweet](ctx, s.tweets, tweetId, userId)
}
