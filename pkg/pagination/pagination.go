package pagination

import (
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Params 分页参数 非法值回落到默认值 而不是报错
type Params struct {
	PageNum  int64 `json:"page_num"`
	PageSize int64 `json:"page_size"`
}

// Meta 分页响应元信息
type Meta struct {
	Total    int64 `json:"total"`
	PageNum  int64 `json:"page_num"`
	PageSize int64 `json:"page_size"`
}

// Normalize 填充默认分页参数 page_num=1 page_size=10
func (p Params) Normalize() Params {
	if p.PageNum <= 0 {
		p.PageNum = constants.DefaultPageNum
	}
	if p.PageSize <= 0 {
		p.PageSize = constants.DefaultPageSize
	}
	return p
}

// Offset 计算跳过的记录数
func (p Params) Offset() int {
	return int((p.PageNum - 1) * p.PageSize)
}

// Meta 由总数生成响应元信息
func (p Params) Meta(total int64) Meta {
	return Meta{Total: total, PageNum: p.PageNum, PageSize: p.PageSize}
}

// List runs the paginated query pattern over an already-filtered gorm
// query: count the full filter first, then fetch one page. The count
// and the page share the filter but nothing else, so total always
// reflects the filter rather than the page.
func List[T any](query *gorm.DB, p Params) ([]T, int64, error) {
	p = p.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "pagination: count failed")
	}

	items := make([]T, 0, p.PageSize)
	if err := query.Session(&gorm.Session{}).
		Offset(p.Offset()).Limit(int(p.PageSize)).
		Find(&items).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "pagination: find failed")
	}
	return items, total, nil
}
