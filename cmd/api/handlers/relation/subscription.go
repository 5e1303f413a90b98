package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	relationservice "vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var req SubscribeParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)
	state, err := relationservice.NewSubscriptionService(ctx).ToggleSubscription(ctx, userId, req.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"state": state})
}

func GetSubscribers(ctx context.Context, c *app.RequestContext) {
	var req SubscriberListParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	params := pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize}
	list, err := relationservice.NewSubscriptionService(ctx).GetSubscribers(ctx, req.ChannelId, params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var req SubscriptionListParam
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
	params := pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize}
	list, err := relationservice.NewSubscriptionService(ctx).GetSubscribedChannels(ctx, userId, params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

func IsSubscribed(ctx context.Context, c *app.RequestContext) {
	var req SubscribeParam
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
	subscribed, err := relationservice.NewSubscriptionService(ctx).IsSubscribed(ctx, userId, req.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

func GetMutualSubscriptions(ctx context.Context, c *app.RequestContext) {
	var req MutualParam
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
	channels, err := relationservice.NewSubscriptionService(ctx).GetMutualSubscriptions(ctx, userId, req.OtherUserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"channels": channels})
}

func GetTopChannels(ctx context.Context, c *app.RequestContext) {
	var req TopChannelsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channels, err := relationservice.NewSubscriptionService(ctx).GetTopChannels(ctx, req.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"channels": channels})
}

func GetMonthlySubscriberStats(ctx context.Context, c *app.RequestContext) {
	var req MonthlyStatsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId := req.ChannelId
	if channelId == 0 {
		v, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		channelId = utils.Transfer(v)
	}
	stats, err := relationservice.NewSubscriptionService(ctx).GetMonthlySubscriberStats(ctx, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"stats": stats})
}
