package handlers

import (
	"context"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateComment 在视频下发表评论
func CreateComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var Create CreateCommentParam
	if err = c.BindAndValidate(&Create); err != nil {
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

	comment, err := commentService.CreateComment(ctx, UserId, videoId, Create.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.JSON(consts.StatusCreated, Response{
		Code:    errno.Success.ErrCode,
		Message: errno.Success.ErrMsg,
		Data:    comment,
	})
}
