package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页、关键词(标题/作者,不区分大小写)、分类过滤与排序。非法参数回退为默认值
// @Tags         图书
// @Produce      json
// @Param        page      query  int     false  "页码"  default(1)
// @Param        pageSize  query  int     false  "每页数量(5/10/20/50)"  default(10)
// @Param        q         query  string  false  "关键词"
// @Param        category  query  string  false  "分类(精确匹配)"
// @Param        sortBy    query  string  false  "排序字段"  Enums(title, author, year, rating, price, created_at)
// @Param        sortDir   query  string  false  "排序方向"  Enums(asc, desc)
// @Success      200 {object} appbook.ListBooksResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.ListBooksQuery
	// 全部是字符串字段,绑定不会失败
	_ = c.ShouldBindQuery(&q)

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), q.ToListQuery())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateBook 新增图书
// @Summary      新增图书
// @Description  校验失败返回400和第一条错误信息;category非法时归为Other
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body book.Input true "图书信息"
// @Success      201 {object} appbook.BookView
// @Failure      400 {object} response.ErrorBody "校验失败"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	in := bindInput(c)

	result, err := h.createBookUseCase.Execute(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateBook 整体替换图书
// @Summary      替换图书
// @Description  校验规则与新增相同,id与createdAt不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path  int         true  "图书ID"
// @Param        request body  book.Input  true  "图书信息"
// @Success      200 {object} appbook.BookView
// @Failure      400 {object} response.ErrorBody "校验失败"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, book.ErrBookNotFound)
		return
	}
	in := bindInput(c)

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id  path  int  true  "图书ID"
// @Success      200 {object} response.OKBody
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, book.ErrBookNotFound)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// bindInput 解析请求体
// 请求体缺失或不是JSON对象时按空对象处理,交给校验器给出第一条错误
func bindInput(c *gin.Context) book.Input {
	var in book.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return book.Input{}
	}
	return in
}

// parseID 路径参数必须是非负整数,否则视为不存在
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
