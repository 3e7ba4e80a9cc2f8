package handlers

import (
	"context"

	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// ListVideo 分页查询视频 支持标题子串与频道过滤
func ListVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var List ListVideoParam
	if err = c.BindAndValidate(&List); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	p := pagination.Params{PageNum: List.PageNum, PageSize: List.PageSize}.Normalize()
	videos, total, err := videoService.VideoList(ctx, videodb.ListFilter{
		Keyword:   List.Query,
		UserId:    List.UserId,
		SortBy:    List.SortBy,
		SortOrder: List.SortOrder,
	}, p)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{
		"items": videos,
		"meta":  p.Meta(total),
	})
}
