package main

import (
	"context"
	"fmt"

	handler_dashboard "VidTube.com/cmd/api/handlers/dashboard"
	handler_interaction "VidTube.com/cmd/api/handlers/interaction"
	handler_relation "VidTube.com/cmd/api/handlers/relation"
	handler_tweet "VidTube.com/cmd/api/handlers/tweet"
	handler_video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router"
	dashboardservice "VidTube.com/cmd/dashboard/service"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	interactionservice "VidTube.com/cmd/interaction/service"
	relationdb "VidTube.com/cmd/relation/dal/db"
	relationservice "VidTube.com/cmd/relation/service"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	tweetservice "VidTube.com/cmd/tweet/service"
	videodb "VidTube.com/cmd/video/dal/db"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(1, 1); err != nil {
		hlog.Fatalf("init snowflake failed: %v", err)
	}

	db, err := database.Init()
	if err != nil {
		hlog.Fatalf("init mysql failed: %v", err)
	}

	storage, err := oss.NewStorage()
	if err != nil {
		hlog.Fatalf("init minio failed: %v", err)
	}

	statsCache := cache.NewStatsCacheManager(cache.NewRedisClient())

	// MQ只服务于下游统计 连不上时降级为不发事件
	var producer *mq.Producer
	mqURL := fmt.Sprintf("amqp://%s:%s@%s/", config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password, config.ConfigInfo.RabbitMq.Addr)
	producer, err = mq.NewProducer(mqURL)
	if err != nil {
		hlog.Warnf("connect rabbitmq failed, events disabled: %v", err)
		producer = nil
	}

	videoRepo := videodb.NewVideoRepo(db)
	commentRepo := interactiondb.NewCommentRepo(db)
	likeRepo := interactiondb.NewLikeRepo(db)
	subscriptionRepo := relationdb.NewSubscriptionRepo(db)
	tweetRepo := tweetdb.NewTweetRepo(db)

	handler_video.Init(videoservice.NewVideoService(videoRepo, storage, statsCache))
	handler_interaction.Init(
		interactionservice.NewCommentService(commentRepo, videoRepo),
		interactionservice.NewLikeService(likeRepo, videoRepo, producer),
	)
	handler_relation.Init(relationservice.NewRelationService(subscriptionRepo, producer))
	handler_tweet.Init(tweetservice.NewTweetService(tweetRepo))
	handler_dashboard.Init(dashboardservice.NewDashboardService(
		videoRepo, subscriptionRepo, likeRepo, statsCache))

	jwt.AccessTokenJwtInit()
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(constants.MaxVideoSize),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)
	r.Spin()
}
