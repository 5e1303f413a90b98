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

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var req CreateCommentParam
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
	comment, err := interactionservice.NewCommentService(ctx).AddComment(ctx, userId, req.VideoId, req.Content, req.ParentId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var req UpdateCommentParam
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
	comment, err := interactionservice.NewCommentService(ctx).UpdateComment(ctx, userId, req.CommentId, req.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var req DeleteCommentParam
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
	if err := interactionservice.NewCommentService(ctx).DeleteComment(ctx, userId, req.CommentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	var req ListCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	forest, err := interactionservice.NewCommentService(ctx).GetVideoComments(ctx, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comments": forest})
}
