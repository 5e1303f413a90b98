package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode     = 0
	ServiceErrCode  = 10001
	ParamErrCode    = 10002
	NotFoundErrCode = 10003
	ForbiddenCode   = 10004
	ConflictCode    = 10005
	UnavailableCode = 10006
	AuthFailedCode  = 10007
	MysqlErrCode    = 10008
	RedisErrCode    = 10009
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success        = NewErrNo(SuccessCode, "Success")
	ServiceErr     = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	RequestErr     = NewErrNo(ParamErrCode, "Wrong request parameter")
	NotFoundErr    = NewErrNo(NotFoundErrCode, "Resource not found")
	ForbiddenErr   = NewErrNo(ForbiddenCode, "No permission to operate this resource")
	ConflictErr    = NewErrNo(ConflictCode, "Resource already exists")
	UnavailableErr = NewErrNo(UnavailableCode, "Storage did not respond in time")
	AuthFailedErr  = NewErrNo(AuthFailedCode, "Authentication failed")
	MysqlErr       = NewErrNo(MysqlErrCode, "Mysql operation failed")
	RedisErr       = NewErrNo(RedisErrCode, "Redis operation failed")
)

// ConvertErr keeps typed ErrNo values as-is and folds everything else
// into ServiceErr with the original message attached.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
