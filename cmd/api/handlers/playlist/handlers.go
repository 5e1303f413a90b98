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

type CreatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `json:"playlist_id" form:"playlist_id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `json:"playlist_id" form:"playlist_id" query:"playlist_id"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `json:"playlist_id" form:"playlist_id"`
	VideoId    int64 `json:"video_id" form:"video_id"`
}

type UserPlaylistsParam struct {
	UserId   int64 `query:"user_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
