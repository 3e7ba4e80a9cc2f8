package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestToggleRejectsUnknownTargetType(t *testing.T) {
	// 类型不合法时不触碰存储层
	svc := NewLikeService(nil, nil, nil)

	_, err := svc.Toggle(context.Background(), 1, "playlist", 100)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleRejectsInvalidTargetId(t *testing.T) {
	svc := NewLikeService(nil, nil, nil)

	_, err := svc.Toggle(context.Background(), 1, "video", 0)
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = svc.Toggle(context.Background(), 1, "comment", -9)
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}
