package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	tweetservice "vidtube.com/cmd/tweet/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var req CreateTweetParam
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
	tweet, err := tweetservice.NewTweetService(ctx).CreateTweet(userId, req.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var req UpdateTweetParam
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
	if err := tweetservice.NewTweetService(ctx).UpdateTweet(userId, req.TweetId, req.Content); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var req TweetIdParam
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
	if err := tweetservice.NewTweetService(ctx).DeleteTweet(userId, req.TweetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetTweet(ctx context.Context, c *app.RequestContext) {
	var req TweetIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := int64(0)
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}
	tweet, err := tweetservice.NewTweetService(ctx).GetTweetById(viewerId, req.TweetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	var req UserTweetsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := int64(0)
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}
	params := pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize}
	list, err := tweetservice.NewTweetService(ctx).GetUserTweets(viewerId, req.UserId, params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}
