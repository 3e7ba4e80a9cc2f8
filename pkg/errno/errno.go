package errno

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	SuccessCode        = 0
	ServiceErrCode     = 10001
	ParamErrCode       = 10002
	InvalidIdErrCode   = 10003
	EmptyContentCode   = 10004
	SelfSubscribeCode  = 10005
	RecordNotExistCode = 10006
	PermissionErrCode  = 10007
	MysqlErrCode       = 10008
	RedisErrCode       = 10009
	OssErrCode         = 10010
	MqErrCode          = 10011
	TokenInvailedCode  = 10012
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
	Success           = NewErrNo(SuccessCode, "Success")
	ServiceErr        = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr          = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	InvalidIdErr      = NewErrNo(InvalidIdErrCode, "Invalid identifier")
	EmptyContentErr   = NewErrNo(EmptyContentCode, "Content must not be blank")
	SelfSubscribeErr  = NewErrNo(SelfSubscribeCode, "You cannot subscribe to your own channel")
	RecordNotExistErr = NewErrNo(RecordNotExistCode, "Record does not exist")
	PermissionErr     = NewErrNo(PermissionErrCode, "You do not own this resource")
	MysqlErr          = NewErrNo(MysqlErrCode, "Mysql went wrong")
	RedisErr          = NewErrNo(RedisErrCode, "Redis went wrong")
	OssErr            = NewErrNo(OssErrCode, "Media storage is unavailable")
	MqErr             = NewErrNo(MqErrCode, "Message queue went wrong")
	TokenInvailedErr  = NewErrNo(TokenInvailedCode, "Token is invalid")
)

// ConvertErr convert error to ErrNo
// in the other error, it will return ServiceErr
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordNotExistErr
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

// HttpCode maps an errno code to the HTTP status family it belongs to.
func HttpCode(code int64) int {
	switch code {
	case SuccessCode:
		return 200
	case ParamErrCode, InvalidIdErrCode, EmptyContentCode, SelfSubscribeCode:
		return 400
	case PermissionErrCode:
		return 403
	case RecordNotExistCode:
		return 404
	case TokenInvailedCode:
		return 401
	case OssErrCode:
		return 502
	default:
		return 500
	}
}
