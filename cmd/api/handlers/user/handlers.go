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

type RegisterParam struct {
	UserName string `json:"user_name" form:"user_name" vd:"len($)>0"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"full_name" form:"full_name"`
	Password string `json:"password" form:"password" vd:"len($)>5"`
}

type UserInfoParam struct {
	UserId int64 `query:"user_id" path:"user_id"`
}

type BlockParam struct {
	TargetId int64 `json:"target_id" form:"target_id" query:"target_id"`
}
