package dto

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ListBooksQuery 列表查询参数
// 全部按字符串接收,非法值由book.NormalizeListParams回退为默认值,不返回400
type ListBooksQuery struct {
	Page     string `form:"page" example:"1"`
	PageSize string `form:"pageSize" example:"10"`
	Q        string `form:"q" example:"tolkien"`
	Category string `form:"category" example:"Fantasy"`
	SortBy   string `form:"sortBy" example:"created_at"`
	SortDir  string `form:"sortDir" example:"desc"`
}

// ToListQuery 转为领域层的原始查询
func (q ListBooksQuery) ToListQuery() book.ListQuery {
	return book.ListQuery{
		Page:     q.Page,
		PageSize: q.PageSize,
		Q:        q.Q,
		Category: q.Category,
		SortBy:   q.SortBy,
		SortDir:  q.SortDir,
	}
}

// StatsQuery 统计接口参数,pageSize只做回显
type StatsQuery struct {
	PageSize string `form:"pageSize" example:"10"`
}

// MetaResponse 前端需要的枚举值
type MetaResponse struct {
	PageSizes        []int    `json:"pageSizes" example:"5,10,20,50"`
	Categories       []string `json:"categories"`
	SortFields       []string `json:"sortFields"`
	PlaceholderImage string   `json:"placeholderImage" example:"https://placehold.co/160x220?text=Book"`
}

// NewMetaResponse 从闭集合构造
func NewMetaResponse() MetaResponse {
	sizes := book.PageSizes()
	pageSizes := make([]int, len(sizes))
	for i, s := range sizes {
		pageSizes[i] = int(s)
	}

	cats := book.Categories()
	categories := make([]string, len(cats))
	for i, c := range cats {
		categories[i] = string(c)
	}

	fields := book.SortFields()
	sortFields := make([]string, len(fields))
	for i, f := range fields {
		sortFields[i] = string(f)
	}

	return MetaResponse{
		PageSizes:        pageSizes,
		Categories:       categories,
		SortFields:       sortFields,
		PlaceholderImage: book.PlaceholderImageURL,
	}
}

// PingResponse 健康检查
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"healthy"`
}
