package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	videoservice "vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var req PublishParam
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

	videoHeader, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("video file is required"), nil)
		return
	}
	videoFile, err := videoHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer videoFile.Close()

	params := &videoservice.PublishVideoParams{
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Category:    req.Category,
		Language:    req.Language,
		Duration:    req.Duration,
		IsPrivate:   req.IsPrivate,
		Video:       videoFile,
		VideoSize:   videoHeader.Size,
		VideoType:   videoHeader.Header.Get("Content-Type"),
	}
	if coverHeader, err := c.FormFile("cover"); err == nil {
		coverFile, err := coverHeader.Open()
		if err == nil {
			defer coverFile.Close()
			params.Cover = coverFile
			params.CoverSize = coverHeader.Size
			params.CoverType = coverHeader.Header.Get("Content-Type")
		}
	}

	video, err := videoservice.NewVideoService(ctx).PublishVideo(params)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var req UpdateVideoParam
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
	err = videoservice.NewVideoService(ctx).UpdateVideo(&videoservice.UpdateVideoParams{
		VideoId:     req.VideoId,
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Category:    req.Category,
		Language:    req.Language,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
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
	published, err := videoservice.NewVideoService(ctx).TogglePublishStatus(userId, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"is_published": published})
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	if err := videoservice.NewVideoService(ctx).SoftDeleteVideo(userId, req.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DownloadVideo(ctx context.Context, c *app.RequestContext) {
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
	url, err := videoservice.NewVideoService(ctx).DownloadVideo(userId, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"url": url})
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := optionalUserId(ctx, c)
	summary, video, err := videoservice.NewVideoService(ctx).GetVideoById(viewerId, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"video":   video,
		"summary": summary,
	})
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	var req ListParam
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
	list, err := videoservice.NewVideoService(ctx).GetLikedVideos(userId, pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

func GetWatchHistory(ctx context.Context, c *app.RequestContext) {
	var req ListParam
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
	list, err := videoservice.NewVideoService(ctx).GetWatchHistory(userId, pagination.Params{PageNum: req.PageNum, PageSize: req.PageSize})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, list)
}

func UpdateWatchProgress(ctx context.Context, c *app.RequestContext) {
	var req WatchProgressParam
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
	if err := videoservice.NewViewService(ctx).UpdateWatchProgress(userId, req.VideoId, req.WatchedTime); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
