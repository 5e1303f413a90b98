package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	playlistservice "vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req CreatePlaylistParam
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
	playlist, err := playlistservice.NewPlaylistService(ctx).CreatePlaylist(userId, req.Name, req.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req UpdatePlaylistParam
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
	if err := playlistservice.NewPlaylistService(ctx).UpdatePlaylist(userId, req.PlaylistId, req.Name, req.Description); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistIdParam
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
	if err := playlistservice.NewPlaylistService(ctx).DeletePlaylist(userId, req.PlaylistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistVideoParam
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
	if err := playlistservice.NewPlaylistService(ctx).AddVideo(userId, req.PlaylistId, req.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistVideoParam
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
	if err := playlistservice.NewPlaylistService(ctx).RemoveVideo(userId, req.PlaylistId, req.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := int64(0)
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}
	playlist, err := playlistservice.NewPlaylistService(ctx).GetPlaylistById(viewerId, req.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	var req UserPlaylistsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := int64(0)
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}
	params := pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize}
	list, err := playlistservice.NewPlaylistService(ctx).GetUserPlaylists(viewerId, req.UserId, params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}
