package handlers

import (
	"VidTube.com/cmd/tweet/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var tweetService *service.TweetService

// Init 注入动态服务 进程启动时调用一次
func Init(tweets *service.TweetService) {
	tweetService = tweets
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

type CreateTweetParam struct {
	Content string `form:"content"`
}

type UpdateTweetParam struct {
	Content string `form:"content"`
}
