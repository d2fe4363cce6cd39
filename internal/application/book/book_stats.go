package book

import (
	"context"
	"math"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// BookStatsUseCase 全表统计用例
type BookStatsUseCase struct {
	bookService book.Service
}

// NewBookStatsUseCase 创建统计用例
func NewBookStatsUseCase(bookService book.Service) *BookStatsUseCase {
	return &BookStatsUseCase{bookService: bookService}
}

// StatsResponse 统计响应
// pageSize只是回显,不影响统计范围
type StatsResponse struct {
	Total                  int64            `json:"total" example:"30"`
	AveragePublicationYear int              `json:"averagePublicationYear" example:"1987"`
	AverageRating          float64          `json:"averageRating" example:"2.45"`
	TotalValue             float64          `json:"totalValue" example:"612.3"`
	CountByCategory        map[string]int64 `json:"countByCategory"`
	PageSize               int              `json:"pageSize" example:"10"`
}

// Execute 执行统计
// 平均年份四舍六入五取偶,平均评分与总价保留两位小数;空表全部为0
func (uc *BookStatsUseCase) Execute(ctx context.Context, rawPageSize string) (resp *StatsResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Stats")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	stats, err := uc.bookService.Stats(ctx)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	counts := stats.CountByCategory
	if counts == nil {
		counts = map[string]int64{}
	}

	return &StatsResponse{
		Total:                  stats.Total,
		AveragePublicationYear: int(math.RoundToEven(stats.AvgYear)),
		AverageRating:          Round2(stats.AvgRating),
		TotalValue:             Round2(stats.TotalValue),
		CountByCategory:        counts,
		PageSize:               int(book.NormalizePageSize(rawPageSize)),
	}, nil
}
