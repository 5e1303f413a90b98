package pagination

import (
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

// Params is the inbound paging contract shared by every listing query.
type Params struct {
	PageNum  int64 `form:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" json:"page_size"`
}

// Normalize fills defaults and clamps the page size. A zero field is an
// unset form value and takes the default; negative values are rejected by
// Validate, not here.
func (p Params) Normalize() Params {
	if p.PageNum <= 0 {
		p.PageNum = constants.DefaultPageNum
	}
	if p.PageSize <= 0 {
		p.PageSize = constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	return p
}

// Validate rejects bounds the caller set on purpose: a negative page or size
// is an error, while zero means unset and is left for Normalize to default.
func (p Params) Validate() error {
	if p.PageNum < 0 || p.PageSize < 0 {
		return errno.RequestErr.WithMessage("page_num and page_size must not be negative")
	}
	return nil
}

func (p Params) Offset() int {
	return int((p.PageNum - 1) * p.PageSize)
}

func (p Params) Limit() int {
	return int(p.PageSize)
}

// Meta is the outbound paging envelope: items travel next to it in the
// response struct, never inside it.
type Meta struct {
	Total      int64 `json:"total"`
	PageNum    int64 `json:"page_num"`
	PageSize   int64 `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
}

func NewMeta(total int64, p Params) Meta {
	pages := int64(0)
	if p.PageSize > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Total:      total,
		PageNum:    p.PageNum,
		PageSize:   p.PageSize,
		TotalPages: pages,
	}
}
