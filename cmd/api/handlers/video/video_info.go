package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// VideoInfo 获取单个视频
func VideoInfo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseId(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	video, err := videoService.VideoInfo(ctx, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
