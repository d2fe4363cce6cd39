package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound
)

// 校验失败提示(按校验顺序排列,返回给前端展示)
const (
	MsgTitleRequired  = "Title is required."
	MsgAuthorRequired = "Author is required."
	MsgYearRequired   = "Year is required (number)."
	MsgYearRange      = "Year must be between 0 and 2100."
	MsgRatingNumber   = "Rating must be a number."
	MsgRatingRange    = "Rating must be 0–5."
	MsgPriceNumber    = "Price must be a number."
	MsgPriceRange     = "Price must be >= 0."
)

// NewValidationError 创建校验错误(HTTP 400)
func NewValidationError(message string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidParams, message)
}
