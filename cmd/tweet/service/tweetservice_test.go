package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestCreateTweetRejectsBlankContent(t *testing.T) {
	// 内容为空时不触碰存储层
	svc := NewTweetService(nil)

	_, err := svc.CreateTweet(context.Background(), 1, "")
	assert.ErrorIs(t, err, errno.EmptyContentErr)

	_, err = svc.CreateTweet(context.Background(), 1, "   \n")
	assert.ErrorIs(t, err, errno.EmptyContentErr)
}

func TestUpdateTweetRejectsInvalidId(t *testing.T) {
	svc := NewTweetService(nil)

	_, err := svc.UpdateTweet(context.Background(), 0, 1, "hello")
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}

func TestDeleteTweetRejectsInvalidId(t *testing.T) {
	svc := NewTweetService(nil)

	err := svc.DeleteTweet(context.Background(), -1, 1)
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}
