package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	interactiondal "vidtube.com/cmd/interaction/dal"
	playlistdal "vidtube.com/cmd/playlist/dal"
	relationdal "vidtube.com/cmd/relation/dal"
	tweetdal "vidtube.com/cmd/tweet/dal"
	userdal "vidtube.com/cmd/user/dal"
	videodal "vidtube.com/cmd/video/dal"
	"vidtube.com/config"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
)

func Init() {
	config.Init()

	userdal.Init()
	interactiondal.Init()
	relationdal.Init()
	videodal.Init()
	tweetdal.Init()
	playlistdal.Init()

	cache.Load()

	if err := oss.Init(); err != nil {
		hlog.Warnf("object storage unavailable: %v", err)
	}

	mqAddr := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr,
	)
	producer, err := mq.NewProducer(mqAddr)
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, engagement events disabled: %v", err)
		return
	}
	mq.SetGlobalProducer(producer)

	consumer, err := mq.NewConsumer(mqAddr)
	if err != nil {
		hlog.Warnf("engagement consumer unavailable: %v", err)
		return
	}
	go func() {
		if err := consumer.Run(context.Background()); err != nil && err != context.Canceled {
			hlog.Errorf("engagement consumer stopped: %v", err)
		}
	}()
}

func main() {
	Init()

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(4*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "internal server error",
			})
		})))

	register(r)

	r.Spin()
}
