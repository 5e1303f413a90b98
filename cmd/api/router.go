package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	interaction "vidtube.com/cmd/api/handlers/interaction"
	playlist "vidtube.com/cmd/api/handlers/playlist"
	relation "vidtube.com/cmd/api/handlers/relation"
	tweet "vidtube.com/cmd/api/handlers/tweet"
	user "vidtube.com/cmd/api/handlers/user"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/router/authfunc"
	userdb "vidtube.com/cmd/user/dal/db"
	jwt "vidtube.com/pkg/jwt"
)

func register(r *server.Hertz) {
	r.GET("/healthz", func(ctx context.Context, c *app.RequestContext) {
		if err := userdb.Ping(ctx); err != nil {
			c.JSON(consts.StatusServiceUnavailable, map[string]interface{}{
				"status":    "unavailable",
				"timestamp": time.Now().Unix(),
			})
			return
		}
		c.JSON(consts.StatusOK, map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	v1 := r.Group("/v1")

	userGroup := v1.Group("/user")
	userGroup.POST("/register", user.Register)
	userGroup.POST("/login", jwt.AccessTokenJwtMiddleware.LoginHandler)
	userGroup.GET("/info", user.GetUserInfo)
	userAuthed := userGroup.Group("", authfunc.Auth()...)
	userAuthed.POST("/block", user.BlockUser)
	userAuthed.POST("/unblock", user.UnblockUser)
	userAuthed.GET("/blocked", user.GetBlockedUsers)

	commentGroup := v1.Group("/comment")
	commentGroup.GET("/list", interaction.ListComments)
	commentAuthed := commentGroup.Group("", authfunc.Auth()...)
	commentAuthed.POST("/create", interaction.CreateComment)
	commentAuthed.POST("/update", interaction.UpdateComment)
	commentAuthed.POST("/delete", interaction.DeleteComment)

	likeGroup := v1.Group("/like")
	likeGroup.GET("/count", interaction.GetLikeCount)
	likeAuthed := likeGroup.Group("", authfunc.Auth()...)
	likeAuthed.POST("/toggle", interaction.ToggleLike)
	likeAuthed.GET("/status", interaction.IsLiked)

	subGroup := v1.Group("/subscription")
	subGroup.GET("/subscribers", relation.GetSubscribers)
	subGroup.GET("/top", relation.GetTopChannels)
	subAuthed := subGroup.Group("", authfunc.Auth()...)
	subAuthed.POST("/toggle", relation.ToggleSubscription)
	subAuthed.GET("/channels", relation.GetSubscribedChannels)
	subAuthed.GET("/status", relation.IsSubscribed)
	subAuthed.GET("/mutual", relation.GetMutualSubscriptions)
	subAuthed.GET("/stats/monthly", relation.GetMonthlySubscriberStats)

	videoGroup := v1.Group("/video")
	videoGroup.GET("/get", video.GetVideo)
	videoGroup.GET("/channel", video.GetChannelVideos)
	videoGroup.GET("/trending", video.GetTrendingVideos)
	videoGroup.GET("/suggested", video.GetSuggestedVideos)
	videoGroup.GET("/search", video.SearchVideos)
	videoGroup.GET("/stats", video.GetChannelStats)
	videoAuthed := videoGroup.Group("", authfunc.Auth()...)
	videoAuthed.POST("/publish", video.PublishVideo)
	videoAuthed.POST("/update", video.UpdateVideo)
	videoAuthed.POST("/publish/toggle", video.TogglePublishStatus)
	videoAuthed.POST("/delete", video.DeleteVideo)
	videoAuthed.GET("/download", video.DownloadVideo)
	videoAuthed.GET("/liked", video.GetLikedVideos)
	videoAuthed.GET("/history", video.GetWatchHistory)
	videoAuthed.POST("/progress", video.UpdateWatchProgress)
	videoAuthed.GET("/analytics", video.GetVideoAnalytics)
	videoAuthed.GET("/dashboard", video.GetCreatorDashboard)

	playlistGroup := v1.Group("/playlist")
	playlistGroup.GET("/get", playlist.GetPlaylist)
	playlistGroup.GET("/list", playlist.GetUserPlaylists)
	playlistAuthed := playlistGroup.Group("", authfunc.Auth()...)
	playlistAuthed.POST("/create", playlist.CreatePlaylist)
	playlistAuthed.POST("/update", playlist.UpdatePlaylist)
	playlistAuthed.POST("/delete", playlist.DeletePlaylist)
	playlistAuthed.POST("/video/add", playlist.AddVideoToPlaylist)
	playlistAuthed.POST("/video/remove", playlist.RemoveVideoFromPlaylist)

	tweetGroup := v1.Group("/tweet")
	tweetGroup.GET("/get", tweet.GetTweet)
	tweetGroup.GET("/list", tweet.GetUserTweets)
	tweetAuthed := tweetGroup.Group("", authfunc.Auth()...)
	tweetAuthed.POST("/create", tweet.CreateTweet)
	tweetAuthed.POST("/update", tweet.UpdateTweet)
	tweetAuthed.POST("/delete", tweet.DeleteTweet)
}
