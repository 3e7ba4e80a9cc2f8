package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))
	assert.Equal(t, PermissionErr, ConvertErr(PermissionErr))

	// errno在包装链中也能被识别出来
	wrapped := errors.WithMessage(RecordNotExistErr, "load entity failed")
	assert.Equal(t, RecordNotExistErr, ConvertErr(wrapped))

	assert.Equal(t, RecordNotExistErr, ConvertErr(gorm.ErrRecordNotFound))

	converted := ConvertErr(errors.New("something broke"))
	assert.Equal(t, ServiceErr.ErrCode, converted.ErrCode)
	assert.Equal(t, "something broke", converted.ErrMsg)
}

func TestWithMessageKeepsCode(t *testing.T) {
	e := ParamErr.WithMessage("invalid target type")
	assert.Equal(t, ParamErr.ErrCode, e.ErrCode)
	assert.Equal(t, "invalid target type", e.ErrMsg)
	// 原值不受影响
	assert.Equal(t, "Wrong Parameter has been given", ParamErr.ErrMsg)
}

func TestHttpCode(t *testing.T) {
	assert.Equal(t, 200, HttpCode(SuccessCode))
	assert.Equal(t, 400, HttpCode(InvalidIdErrCode))
	assert.Equal(t, 400, HttpCode(SelfSubscribeCode))
	assert.Equal(t, 401, HttpCode(TokenInvailedCode))
	assert.Equal(t, 403, HttpCode(PermissionErrCode))
	assert.Equal(t, 404, HttpCode(RecordNotExistCode))
	assert.Equal(t, 500, HttpCode(MysqlErrCode))
	assert.Equal(t, 502, HttpCode(OssErrCode))
}
