package handlers

import (
	"context"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// SubscribeAction 订阅/取消订阅频道 同一接口翻转状态
func SubscribeAction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	channelId, err := utils.ParseId(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}

	active, err := relationService.ToggleSubscription(ctx, UserId, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{"subscribed": active})
}
