package handlers

import (
	"context"

	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
)

// LikedVideos 获取当前用户点赞过的视频列表
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var List ListParam
	if err = c.BindAndValidate(&List); err != nil {
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

	p := pagination.Params{PageNum: List.PageNum, PageSize: List.PageSize}.Normalize()
	videos, total, err := likeService.LikedVideos(ctx, UserId, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{
		"items": videos,
		"meta":  p.Meta(total),
	})
}
