package handlers

import (
	"context"

	"vidtube.com/pkg/errno"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// optionalUserId resolves the viewer id on routes that work both signed in
// and anonymous. Anonymous viewers get id 0.
func optionalUserId(ctx context.Context, c *app.RequestContext) int64 {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0
	}
	return utils.Transfer(v)
}

type PublishParam struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Tags        []string `form:"tags"`
	Category    string   `form:"category"`
	Language    string   `form:"language"`
	Duration    int64    `form:"duration"`
	IsPrivate   bool     `form:"is_private"`
}

type UpdateVideoParam struct {
	VideoId     int64    `json:"video_id" form:"video_id"`
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Tags        []string `json:"tags" form:"tags"`
	Category    string   `json:"category" form:"category"`
	Language    string   `json:"language" form:"language"`
}

type VideoIdParam struct {
	VideoId int64 `json:"video_id" form:"video_id" query:"video_id"`
}

type WatchProgressParam struct {
	VideoId     int64 `json:"video_id" form:"video_id"`
	WatchedTime int64 `json:"watched_time" form:"watched_time"`
}

type ListParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type ChannelVideosParam struct {
	ChannelId int64  `query:"channel_id"`
	SortBy    string `query:"sort_by"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type ChannelStatsParam struct {
	ChannelId int64 `query:"channel_id"`
}

type TrendingParam struct {
	Limit int `query:"limit"`
}

type SuggestParam struct {
	Count int `query:"count"`
}

type SearchParam struct {
	Keyword     string   `query:"keyword"`
	Tags        []string `query:"tags"`
	MinDuration int64    `query:"min_duration"`
	MaxDuration int64    `query:"max_duration"`
	PageNum     int64    `query:"page_num"`
	PageSize    int64    `query:"page_size"`
}
