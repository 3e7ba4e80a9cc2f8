package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestToggleSubscriptionRejectsSelf(t *testing.T) {
	// 自订阅在触碰存储层之前就被拒绝
	svc := NewRelationService(nil, nil)

	_, err := svc.ToggleSubscription(context.Background(), 5, 5)
	assert.ErrorIs(t, err, errno.SelfSubscribeErr)
}

func TestToggleSubscriptionRejectsInvalidChannel(t *testing.T) {
	svc := NewRelationService(nil, nil)

	_, err := svc.ToggleSubscription(context.Background(), 5, 0)
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = svc.ToggleSubscription(context.Background(), 5, -3)
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}
