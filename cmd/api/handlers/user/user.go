package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	userservice "vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := userservice.NewUserService(ctx).Register(ctx, req.UserName, req.Email, req.FullName, req.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user.Summary())
}

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var req UserInfoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := req.UserId
	if userId == 0 {
		v, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		userId = utils.Transfer(v)
	}
	user, err := userservice.NewUserService(ctx).GetUserInfo(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func BlockUser(ctx context.Context, c *app.RequestContext) {
	var req BlockParam
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
	if err := userservice.NewBlockService(ctx).BlockUser(ctx, userId, req.TargetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UnblockUser(ctx context.Context, c *app.RequestContext) {
	var req BlockParam
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
	if err := userservice.NewBlockService(ctx).UnblockUser(ctx, userId, req.TargetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetBlockedUsers(ctx context.Context, c *app.RequestContext) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)
	ids, err := userservice.NewBlockService(ctx).GetBlockedUserIds(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	summaries, err := userservice.NewUserService(ctx).GetUserSummaries(ctx, ids)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	users := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if s, ok := summaries[id]; ok {
			users = append(users, s)
		}
	}
	SendResponse(c, errno.Success, map[string]interface{}{"users": users})
}
