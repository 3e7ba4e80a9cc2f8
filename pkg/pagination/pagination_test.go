package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Params{}.Normalize()
	assert.Equal(t, int64(1), p.PageNum)
	assert.Equal(t, int64(10), p.PageSize)

	p = Params{PageNum: -3, PageSize: 0}.Normalize()
	assert.Equal(t, int64(1), p.PageNum)
	assert.Equal(t, int64(10), p.PageSize)
}

func TestNormalizeKeepsValid(t *testing.T) {
	p := Params{PageNum: 3, PageSize: 25}.Normalize()
	assert.Equal(t, int64(3), p.PageNum)
	assert.Equal(t, int64(25), p.PageSize)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{PageNum: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, Params{PageNum: 2, PageSize: 10}.Offset())
	assert.Equal(t, 40, Params{PageNum: 3, PageSize: 20}.Offset())
}

func TestMeta(t *testing.T) {
	m := Params{PageNum: 2, PageSize: 10}.Meta(37)
	assert.Equal(t, int64(37), m.Total)
	assert.Equal(t, int64(2), m.PageNum)
	assert.Equal(t, int64(10), m.PageSize)
}
