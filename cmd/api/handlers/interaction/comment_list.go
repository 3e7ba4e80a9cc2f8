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

// ListComments 分页获取视频评论 最新的在前
func ListComments(ctx context.Context, c *app.RequestContext) {
	var err error
	var List ListParam
	if err = c.BindAndValidate(&List); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, err := utils.ParseId(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	p := pagination.Params{PageNum: List.PageNum, PageSize: List.PageSize}.Normalize()
	comments, total, err := commentService.ListComments(ctx, videoId, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, hutils.H{
		"items": comments,
		"meta":  p.Meta(total),
	})
}
