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

// ChannelVideos 分页获取频道发布的视频
func ChannelVideos(ctx context.Context, c *app.RequestContext) {
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
	videos, total, err := dashboardService.GetChannelVideos(ctx, channelId, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{
		"items": videos,
		"meta":  p.Meta(total),
	})
}
