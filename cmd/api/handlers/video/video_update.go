package handlers

import (
	"context"
	"io"

	"VidTube.com/cmd/video/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UpdateVideo 修改视频标题/简介 可同时更换封面 仅限所有者
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var Video UpdateVideoParam
	if err = c.BindAndValidate(&Video); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, err := utils.ParseId(c.Param("video_id"))
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

	var coverReader io.Reader
	var coverSize int64
	coverFile, size, err := openFormFile(c, "cover")
	if err == nil {
		defer coverFile.Close()
		coverReader = coverFile
		coverSize = size
	}

	video, err := videoService.Update(ctx, videoId, UserId, service.UpdateParams{
		Title:       Video.Title,
		Description: Video.Description,
	}, coverReader, coverSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
