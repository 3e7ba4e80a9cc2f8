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

// SubscribedChannels 分页获取用户订阅的频道
func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var err error
	var List ListParam
	if err = c.BindAndValidate(&List); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscriberId, err := utils.ParseId(c.Param("subscriber_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	p := pagination.Params{PageNum: List.PageNum, PageSize: List.PageSize}.Normalize()
	channels, total, err := relationService.SubscribedChannels(ctx, subscriberId, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{
		"items": channels,
		"meta":  p.Meta(total),
	})
}
