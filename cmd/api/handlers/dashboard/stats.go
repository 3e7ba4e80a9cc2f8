package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelStats 获取频道的统计数据
func ChannelStats(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ParseId(c.Param("channel_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	stats, err := dashboardService.GetChannelStats(ctx, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}
