package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// ListBooksUseCase 图书列表查询用例
// 分页、关键词、分类过滤、排序;参数非法时回退默认值,从不返回4xx
type ListBooksUseCase struct {
	bookService book.Service
	requery     bool
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, cfg *config.Config) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		requery:     cfg.Listing.RequeryClampedPage,
	}
}

// ListBooksResponse 列表查询响应
type ListBooksResponse struct {
	Items      []BookView `json:"items"`
	Total      int64      `json:"total" example:"42"`
	Page       int        `json:"page" example:"1"`
	PageSize   int        `json:"pageSize" example:"10"`
	TotalPages int        `json:"totalPages" example:"5"`
}

// Execute 执行列表查询用例
//
// 请求页超过总页数时page收敛到最后一页。默认items仍来自原偏移量(通常为空),
// listing.requery_clamped_page=true时按收敛后的页码重新查询一次
func (uc *ListBooksUseCase) Execute(ctx context.Context, q book.ListQuery) (resp *ListBooksResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ListBooks")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	params := book.NormalizeListParams(q)

	result, err := uc.bookService.ListBooks(ctx, params)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	if uc.requery && result.Clamped(params) {
		result, err = uc.bookService.ListBooks(ctx, params.WithPage(result.Page))
		if err != nil {
			return nil, wrapStoreError(err)
		}
	}

	return &ListBooksResponse{
		Items:      NewBookViews(result.Items),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}
