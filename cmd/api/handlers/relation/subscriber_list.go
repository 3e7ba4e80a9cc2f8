package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// SubscriberList 分页获取频道的订阅者
func SubscriberList(ctx context.Context, c *app.RequestContext) {
	var err error
	var List ListParam
	if err = c.BindAndValidate(&List); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId, err := utils.ParseId(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	p := pagination.Params{PageNum: List.PageNum, PageSize: List.PageSize}.Normalize()
	subscribers, total, err := relationService.Subscribers(ctx, channelId, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{
		"items": subscribers,
		"meta":  p.Meta(total),
	})
}
