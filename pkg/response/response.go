package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// ErrorBody 错误响应结构
// 设计说明：
// 1. 前端只依赖error字段展示提示，不返回内部错误码
// 2. HTTP状态码由AppError.HTTPStatus()决定（400/404/429/500）
type ErrorBody struct {
	Error string `json:"error" example:"Title is required."`
}

// OKBody 删除等无返回数据操作的确认
type OKBody struct {
	OK bool `json:"ok" example:"true"`
}

// Success 200响应，直接输出业务数据（不包信封）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK 200 {"ok": true}
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, OKBody{OK: true})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := h.createBookUseCase.Execute(ctx, input)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 5xx记录内部错误，客户端只看到通用提示
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		c.JSON(status, ErrorBody{Error: apperrors.ErrInternal.Message})
		return
	}

	c.JSON(status, ErrorBody{Error: appErr.Message})
}

// AbortWithError 中间件中使用：输出错误并终止后续Handler
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
