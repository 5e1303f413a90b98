package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	interactionservice "vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

func ToggleLike(ctx context.Context, c *app.RequestContext) {
	var req LikeParam
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
	state, err := interactionservice.NewLikeService(ctx).ToggleLike(ctx, userId, req.TargetKind, req.TargetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"state": state})
}

func GetLikeCount(ctx context.Context, c *app.RequestContext) {
	var req LikeCountParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	count, err := interactionservice.NewLikeService(ctx).GetLikeCount(ctx, req.TargetKind, req.TargetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"count": count})
}

func IsLiked(ctx context.Context, c *app.RequestContext) {
	var req LikeCountParam
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
	liked, err := interactionservice.NewLikeService(ctx).IsLiked(ctx, userId, req.TargetKind, req.TargetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"liked": liked})
}
