package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Meta 前端使用的枚举值
// @Summary      元数据
// @Description  可选的每页数量、分类(有序)、排序字段与占位图
// @Tags         元数据
// @Produce      json
// @Success      200 {object} dto.MetaResponse
// @Router       /api/meta [get]
func Meta(c *gin.Context) {
	response.Success(c, dto.NewMetaResponse())
}

// Ping 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} dto.PingResponse
// @Router       /ping [get]
func Ping(c *gin.Context) {
	response.Success(c, dto.PingResponse{Message: "pong", Status: "healthy"})
}
