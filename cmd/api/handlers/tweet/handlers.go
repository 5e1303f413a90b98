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

type CreateTweetParam struct {
	Content string `json:"content" form:"content"`
}

type UpdateTweetParam struct {
	TweetId int64  `json:"tweet_id" form:"tweet_id"`
	Content string `json:"content" form:"content"`
}

type TweetIdParam struct {
	TweetId int64 `json:"tweet_id" form:"tweet_id" query:"tweet_id"`
}

type UserTweetsParam struct {
	UserId   int64 `query:"user_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
