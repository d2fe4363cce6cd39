package book

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ListQuery 列表查询的原始参数(均为字符串,来自query string)
type ListQuery struct {
	Page     string
	PageSize string
	Q        string
	Category string
	SortBy   string
	SortDir  string
}

// ListParams 规范化后的列表参数
// 只能由NormalizeListParams产生,所有字段都已落入合法范围
type ListParams struct {
	Page     int
	PageSize PageSize
	Keyword  string // 空串表示不过滤
	Category string // 空串表示不过滤;不做合法性校验,未知分类返回空结果
	SortBy   SortField
	SortDir  SortDirection
}

// NormalizeListParams 解析列表参数,非法值一律回退为默认值(从不报错)
func NormalizeListParams(q ListQuery) ListParams {
	page := parsePage(q.Page)

	size := DefaultPageSize
	if n, ok := parseInt(q.PageSize); ok {
		size = ParsePageSize(n)
	}

	return ListParams{
		Page:     page,
		PageSize: size,
		Keyword:  strings.TrimSpace(q.Q),
		Category: strings.TrimSpace(q.Category),
		SortBy:   ParseSortField(q.SortBy),
		SortDir:  ParseSortDirection(q.SortDir),
	}
}

// NormalizePageSize 单独解析pageSize(统计接口回显使用)
func NormalizePageSize(raw string) PageSize {
	if n, ok := parseInt(raw); ok {
		return ParsePageSize(n)
	}
	return DefaultPageSize
}

// Offset 分页偏移量
func (p ListParams) Offset() int {
	return (p.Page - 1) * int(p.PageSize)
}

// Limit 每页数量
func (p ListParams) Limit() int {
	return int(p.PageSize)
}

// WithPage 返回页码替换后的副本
func (p ListParams) WithPage(page int) ListParams {
	p.Page = page
	return p
}

// ListResult 分页结果
type ListResult struct {
	Items      []*Book
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// TotalPages 总页数,至少为1
func TotalPages(total int64, size PageSize) int {
	if total <= 0 || size <= 0 {
		return 1
	}
	s := int64(size)
	pages := int((total + s - 1) / s)
	if pages < 1 {
		return 1
	}
	return pages
}

// NewListResult 组装分页结果
// 请求页超过总页数时,返回的page收敛到最后一页,items仍是原偏移量的查询结果
func NewListResult(items []*Book, total int64, p ListParams) *ListResult {
	pages := TotalPages(total, p.PageSize)
	page := p.Page
	if total > 0 && page > pages {
		page = pages
	}
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   int(p.PageSize),
		TotalPages: pages,
	}
}

// Clamped 结果页码是否被收敛过
func (r *ListResult) Clamped(p ListParams) bool {
	return r.Page != p.Page
}

// MaxPage 页码上限,保证偏移量不会溢出
const MaxPage = math.MaxInt32

// parsePage 解析页码:非法或<1时为1,过大时收敛到MaxPage
func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	switch {
	case errors.Is(err, strconv.ErrRange) && n > 0:
		return MaxPage
	case err != nil, n < 1:
		return 1
	case n > MaxPage:
		return MaxPage
	default:
		return n
	}
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
