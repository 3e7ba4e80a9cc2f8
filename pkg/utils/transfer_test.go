package utils

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(42), Transfer(int64(42)))
	assert.Equal(t, int64(42), Transfer(float64(42)))
	assert.Equal(t, int64(42), Transfer("42"))
	assert.Equal(t, int64(-1), Transfer("not a number"))
	assert.Equal(t, int64(-1), Transfer(nil))
}

func TestParseId(t *testing.T) {
	id, err := ParseId("123")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = ParseId("abc")
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = ParseId("0")
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = ParseId("-7")
	assert.ErrorIs(t, err, errno.InvalidIdErr)

	_, err = ParseId("")
	assert.ErrorIs(t, err, errno.InvalidIdErr)
}

func TestCheckId(t *testing.T) {
	assert.NoError(t, CheckId(1))
	assert.ErrorIs(t, CheckId(0), errno.InvalidIdErr)
	assert.ErrorIs(t, CheckId(-1), errno.InvalidIdErr)
}
