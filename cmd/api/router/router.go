package router

import (
	"context"

	handler_dashboard "VidTube.com/cmd/api/handlers/dashboard"
	handler_interaction "VidTube.com/cmd/api/handlers/interaction"
	handler_relation "VidTube.com/cmd/api/handlers/relation"
	handler_tweet "VidTube.com/cmd/api/handlers/tweet"
	handler_video "VidTube.com/cmd/api/handlers/video"
	jwt "VidTube.com/pkg"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Register 挂载全部路由 公共读接口不走jwt
func Register(r *server.Hertz) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, utils.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")
	auth := jwt.AccessTokenJwt.MiddlewareFunc()

	video := v1.Group("/videos")
	{
		video.GET("", handler_video.ListVideo)
		video.GET("/:video_id", handler_video.VideoInfo)
		video.GET("/:video_id/comments", handler_interaction.ListComments)

		video.POST("", auth, handler_video.PublishVideo)
		video.PUT("/:video_id", auth, handler_video.UpdateVideo)
		video.DELETE("/:video_id", auth, handler_video.DeleteVideo)
		video.POST("/:video_id/toggle_publish", auth, handler_video.TogglePublish)
		video.POST("/:video_id/comments", auth, handler_interaction.CreateComment)
	}

	comment := v1.Group("/comments")
	{
		comment.PUT("/:comment_id", auth, handler_interaction.UpdateComment)
		comment.DELETE("/:comment_id", auth, handler_interaction.DeleteComment)
	}

	like := v1.Group("/likes")
	{
		like.POST("/toggle", auth, handler_interaction.LikeAction)
		like.GET("/videos", auth, handler_interaction.LikedVideos)
	}

	subscription := v1.Group("/subscriptions")
	{
		subscription.POST("/:channel_id/toggle", auth, handler_relation.SubscribeAction)
		subscription.GET("/:channel_id/subscribers", handler_relation.SubscriberList)
		subscription.GET("/subscribed/:subscriber_id", handler_relation.SubscribedChannels)
	}

	tweet := v1.Group("/tweets")
	{
		tweet.POST("", auth, handler_tweet.CreateTweet)
		tweet.GET("/user/:user_id", handler_tweet.UserTweets)
		tweet.PUT("/:tweet_id", auth, handler_tweet.UpdateTweet)
		tweet.DELETE("/:tweet_id", auth, handler_tweet.DeleteTweet)
	}

	dashboard := v1.Group("/dashboard", auth)
	{
		dashboard.GET("/:channel_id/stats", handler_dashboard.ChannelStats)
		dashboard.GET("/:channel_id/videos", handler_dashboard.ChannelVideos)
	}
}
