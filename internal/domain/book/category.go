package book

import (
	"sort"
	"strings"
)

// =========================================
// 固定枚举集合
// 设计说明:分类、排序字段、排序方向、每页数量都是封闭集合,
// 在边界处解析,非法值不会进入查询层
// =========================================

// Category 图书分类
type Category string

const (
	CategoryFantasy    Category = "Fantasy"
	CategorySciFi      Category = "Sci-Fi"
	CategoryClassic    Category = "Classic"
	CategoryHorror     Category = "Horror"
	CategoryMystery    Category = "Mystery"
	CategoryNonFiction Category = "Non-Fiction"
	CategoryOther      Category = "Other"
)

// categories 顺序即前端下拉框顺序,种子数据也按此取模
var categories = []Category{
	CategoryFantasy,
	CategorySciFi,
	CategoryClassic,
	CategoryHorror,
	CategoryMystery,
	CategoryNonFiction,
	CategoryOther,
}

// Categories 返回全部分类(有序副本)
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid 是否属于固定分类集合(区分大小写)
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory 解析分类:去空白后不在集合内的一律归为Other
func ParseCategory(s string) Category {
	c := Category(strings.TrimSpace(s))
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// SortField 列表排序字段
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByAuthor    SortField = "author"
	SortByYear      SortField = "year"
	SortByRating    SortField = "rating"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "created_at"
)

// DefaultSortField 默认按创建时间排序
const DefaultSortField = SortByCreatedAt

var sortFields = map[SortField]struct{}{
	SortByTitle:     {},
	SortByAuthor:    {},
	SortByYear:      {},
	SortByRating:    {},
	SortByPrice:     {},
	SortByCreatedAt: {},
}

// sortAliases 前端使用的驼峰写法
var sortAliases = map[string]SortField{
	"createdAt": SortByCreatedAt,
}

// ParseSortField 解析排序字段,非法值返回默认字段
func ParseSortField(s string) SortField {
	s = strings.TrimSpace(s)
	if alias, ok := sortAliases[s]; ok {
		return alias
	}
	f := SortField(s)
	if _, ok := sortFields[f]; ok {
		return f
	}
	return DefaultSortField
}

// SortFields 返回全部排序字段(字典序)
func SortFields() []SortField {
	out := make([]SortField, 0, len(sortFields))
	for f := range sortFields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Column 排序字段对应的数据库列名
func (f SortField) Column() string {
	return string(f)
}

// SortDirection 排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection 解析排序方向(不区分大小写),默认desc
func ParseSortDirection(s string) SortDirection {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc
	default:
		return SortDesc
	}
}

// Desc 是否降序
func (d SortDirection) Desc() bool {
	return d != SortAsc
}

// PageSize 每页数量
type PageSize int

// DefaultPageSize 默认每页10条
const DefaultPageSize PageSize = 10

var pageSizes = []PageSize{5, 10, 20, 50}

// PageSizes 允许的每页数量(升序)
func PageSizes() []PageSize {
	out := make([]PageSize, len(pageSizes))
	copy(out, pageSizes)
	return out
}

// ParsePageSize 不在允许集合内的值返回默认值
func ParsePageSize(n int) PageSize {
	for _, allowed := range pageSizes {
		if PageSize(n) == allowed {
			return allowed
		}
	}
	return DefaultPageSize
}
