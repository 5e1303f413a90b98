package handlers

import (
	"vidtube.com/pkg/errno"
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

type SubscribeParam struct {
	ChannelId int64 `json:"channel_id" form:"channel_id" query:"channel_id"`
}

type SubscriberListParam struct {
	ChannelId int64 `query:"channel_id"`
	PageNum   int64 `query:"page_num"`
	PageSize  int64 `query:"page_size"`
}

type SubscriptionListParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type MutualParam struct {
	OtherUserId int64 `query:"other_user_id"`
}

type TopChannelsParam struct {
	Limit int `query:"limit"`
}

type MonthlyStatsParam struct {
	ChannelId int64 `query:"channel_id"`
}
