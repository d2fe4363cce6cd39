package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Recovery 捕获panic,返回500 {"error":"Internal server error."}
// panic内容由response.Error记录到日志
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.AbortWithError(c, apperrors.Wrap(fmt.Errorf("panic: %v", recovered), apperrors.ErrInternal.Message))
	})
}
