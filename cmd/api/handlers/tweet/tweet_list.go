package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// UserTweets 获取用户的全部动态
func UserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ParseId(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	tweets, err := tweetService.UserTweets(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweets)
}
