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

type CreateCommentParam struct {
	VideoId  int64  `json:"video_id" form:"video_id"`
	ParentId int64  `json:"parent_id" form:"parent_id"`
	Content  string `json:"content" form:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `json:"comment_id" form:"comment_id"`
	Content   string `json:"content" form:"content"`
}

type DeleteCommentParam struct {
	CommentId int64 `json:"comment_id" form:"comment_id" query:"comment_id"`
}

type ListCommentParam struct {
	VideoId int64 `query:"video_id"`
}

type LikeParam struct {
	TargetKind string `json:"target_kind" form:"target_kind"`
	TargetId   int64  `json:"target_id" form:"target_id"`
}

type LikeCountParam struct {
	TargetKind string `query:"target_kind"`
	TargetId   int64  `query:"target_id"`
}
