package handlers

import (
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var (
	commentService *service.CommentService
	likeService    *service.LikeService
)

// Init 注入互动服务 进程启动时调用一次
func Init(comments *service.CommentService, likes *service.LikeService) {
	commentService = comments
	likeService = likes
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

type LikeActionParam struct {
	TargetType string `form:"target_type"`
	TargetId   int64  `form:"target_id"`
}

type CreateCommentParam struct {
	Content string `form:"content"`
}

type UpdateCommentParam struct {
	Content string `form:"content"`
}

type ListParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
