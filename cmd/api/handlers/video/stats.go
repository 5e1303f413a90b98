package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	videoservice "vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	var req ChannelStatsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId := req.ChannelId
	if channelId == 0 {
		channelId = optionalUserId(ctx, c)
	}
	stats, err := videoservice.NewStatsService(ctx).GetChannelStats(channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	var req ChannelVideosParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := optionalUserId(ctx, c)
	params := pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize}
	list, err := videoservice.NewStatsService(ctx).GetChannelVideos(viewerId, req.ChannelId, req.SortBy, params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

func GetTrendingVideos(ctx context.Context, c *app.RequestContext) {
	var req TrendingParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := videoservice.NewStatsService(ctx).GetTrendingVideos(req.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"videos": videos})
}

func GetSuggestedVideos(ctx context.Context, c *app.RequestContext) {
	var req SuggestParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := optionalUserId(ctx, c)
	videos, err := videoservice.NewStatsService(ctx).GetSuggestedVideos(viewerId, req.Count)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"videos": videos})
}

func GetVideoAnalytics(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)
	analytics, err := videoservice.NewStatsService(ctx).GetVideoAnalytics(userId, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, analytics)
}

func GetCreatorDashboard(ctx context.Context, c *app.RequestContext) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)
	dashboard, err := videoservice.NewStatsService(ctx).GetCreatorDashboard(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, dashboard)
}

func SearchVideos(ctx context.Context, c *app.RequestContext) {
	var req SearchParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := videoservice.NewStatsService(ctx).SearchVideos(&videoservice.SearchVideosParams{
		Keyword:     req.Keyword,
		Tags:        req.Tags,
		MinDuration: req.MinDuration,
		MaxDuration: req.MaxDuration,
		Params:      pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize},
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}
