package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// StatsHandler 统计处理器
type StatsHandler struct {
	bookStatsUseCase *appbook.BookStatsUseCase
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(bookStatsUseCase *appbook.BookStatsUseCase) *StatsHandler {
	return &StatsHandler{bookStatsUseCase: bookStatsUseCase}
}

// Stats 全表统计
// @Summary      图书统计
// @Description  总数、平均出版年份、平均评分、总价、按分类计数。统计范围始终是全表
// @Tags         统计
// @Produce      json
// @Param        pageSize  query  int  false  "仅回显"  default(10)
// @Success      200 {object} appbook.StatsResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	var q dto.StatsQuery
	_ = c.ShouldBindQuery(&q)

	result, err := h.bookStatsUseCase.Execute(c.Request.Context(), q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
