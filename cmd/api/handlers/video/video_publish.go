package handlers

import (
	"context"
	"io"
	"mime/multipart"

	"VidTube.com/cmd/video/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PublishVideo 发布视频 multipart上传视频文件与可选封面
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var Video PublishVideoParam
	if err = c.BindAndValidate(&Video); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}

	videoFile, videoSize, err := openFormFile(c, "video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}
	defer videoFile.Close()

	var coverReader io.Reader
	var coverSize int64
	coverFile, size, err := openFormFile(c, "cover")
	if err == nil {
		defer coverFile.Close()
		coverReader = coverFile
		coverSize = size
	}

	video, err := videoService.Publish(ctx, UserId, service.PublishParams{
		Title:       Video.Title,
		Description: Video.Description,
		Duration:    Video.Duration,
	}, videoFile, videoSize, coverReader, coverSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.JSON(201, Response{Code: errno.SuccessCode, Message: "Video published successfully", Data: video})
}

func openFormFile(c *app.RequestContext, name string) (multipart.File, int64, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, 0, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, 0, err
	}
	return file, header.Size, nil
}
