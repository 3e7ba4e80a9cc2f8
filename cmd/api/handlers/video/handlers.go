package handlers

import (
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var videoService *service.VideoService

// Init 注入视频服务 进程启动时调用一次
func Init(svc *service.VideoService) {
	videoService = svc
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(errno.HttpCode(Err.ErrCode), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type ListVideoParam struct {
	Query     string `query:"query"`
	UserId    int64  `query:"user_id"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type PublishVideoParam struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
